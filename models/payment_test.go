package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentFields_Order(t *testing.T) {
	require.Len(t, PaymentFields, 17)
	assert.Equal(t, RequiredPaymentFields, []string{
		PaymentFields[0].Key, PaymentFields[1].Key, PaymentFields[2].Key,
		PaymentFields[3].Key, PaymentFields[4].Key,
	})

	months := MonthFields()
	require.Len(t, months, 12)
	assert.Equal(t, "january", months[0].Key)
	assert.Equal(t, "Março", months[2].Label)
	assert.Equal(t, "december", months[11].Key)
}

func TestPaymentFields_Accessors(t *testing.T) {
	// every accessor pair must address a distinct column
	p := &Payment{}
	for i, f := range PaymentFields {
		f.Set(p, f.Key)
		for _, g := range PaymentFields[:i] {
			assert.Equal(t, g.Key, g.Get(p), "setting %s clobbered %s", f.Key, g.Key)
		}
	}
	for _, f := range PaymentFields {
		assert.Equal(t, f.Key, f.Get(p))
	}
}

func TestPayment_ApplyOverwritesEverything(t *testing.T) {
	p := &Payment{ID: 9, Club: "old", June: "20", December: "50"}
	p.Apply(map[string]string{"club": "A", "church": "B", "march": "10"})

	assert.Equal(t, uint(9), p.ID)
	assert.Equal(t, "A", p.Club)
	assert.Equal(t, "B", p.Church)
	assert.Equal(t, "10", p.March)
	assert.Empty(t, p.June)
	assert.Empty(t, p.December)
	assert.Empty(t, p.Total)
}

func TestPayment_Values(t *testing.T) {
	p := &Payment{Club: "A", Total: "100", June: "20"}
	v := p.Values()
	assert.Len(t, v, 17)
	assert.Equal(t, "A", v["club"])
	assert.Equal(t, "20", v["june"])
	assert.Equal(t, "", v["july"])
}

func TestLookupField(t *testing.T) {
	f, ok := LookupField("region")
	require.True(t, ok)
	assert.Equal(t, "Região", f.Label)

	_, ok = LookupField("id")
	assert.False(t, ok)
}
