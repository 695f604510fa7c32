package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryDefault(t *testing.T) {
	r := NewDefault()

	list := r.List()
	types := make([]string, 0, len(list))
	for _, info := range list {
		types = append(types, info.Type)
	}
	assert.Equal(t, []string{
		"rentalContract",
		"subleaseContract",
		"guaranteeAct",
		"inventory",
		"rentReceipt",
		"residenceCertificate",
	}, types)

	for _, info := range list {
		renderer, err := r.Get(info.Type)
		assert.NoError(t, err)
		assert.NotEmpty(t, renderer.Digest())
		assert.Len(t, renderer.Digest(), 16)
		assert.NotNil(t, renderer.Config())
	}
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewDefault()
	_, err := r.Get("willContract")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestRegistryDuplicate(t *testing.T) {
	r := New()
	assert.NoError(t, r.Register(NewRentalContract()))
	err := r.Register(NewRentalContract())
	assert.ErrorIs(t, err, ErrDuplicateTemplate)

	assert.Panics(t, func() { r.MustRegister(NewRentalContract()) })
}

func TestDigestStable(t *testing.T) {
	a := NewRentalContract()
	b := NewRentalContract()
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), NewRentReceipt().Digest())
}
