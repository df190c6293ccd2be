package prefixdb

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonelib/pkg/phonenumber"
)

func buildAreaIndex(t *testing.T) *DB {
	t.Helper()
	db, err := NewBuilder(nil).
		Add(1201, "New Jersey").
		Add(1201664, "Westwood, NJ").
		Add(1212, "New York, NY").
		Add(3902, "Milan").
		Add(3906, "Rome").
		Add(64, "New Zealand").
		Build()
	require.NoError(t, err)
	return db
}

// TestLookup validates longest-prefix resolution: the longest stored
// key the number's digit string begins with wins, probing key lengths
// from longest to shortest.
func TestLookup(t *testing.T) {
	db := buildAreaIndex(t)

	tests := []struct {
		name  string
		num   phonenumber.PhoneNumber
		want  string
		found bool
	}{
		{
			name:  "longest prefix wins",
			num:   phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2016641234},
			want:  "Westwood, NJ",
			found: true,
		},
		{
			name:  "falls back to the shorter prefix",
			num:   phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123},
			want:  "New Jersey",
			found: true,
		},
		{
			name:  "sibling prefix",
			num:   phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2125550123},
			want:  "New York, NY",
			found: true,
		},
		{
			name:  "italian zero is part of the probed digits",
			num:   phonenumber.PhoneNumber{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true},
			want:  "Milan",
			found: true,
		},
		{
			name: "short number matching a stored key exactly",
			// NSN "02" probes as 3902, which is itself a stored key.
			num:   phonenumber.PhoneNumber{CountryCode: 39, NationalNumber: 2, ItalianLeadingZero: true},
			want:  "Milan",
			found: true,
		},
		{
			name:  "country-level prefix",
			num:   phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 33316005},
			want:  "New Zealand",
			found: true,
		},
		{
			name:  "uncovered country code",
			num:   phonenumber.PhoneNumber{CountryCode: 44, NationalNumber: 1212345678},
			found: false,
		},
		{
			name: "zero without the italian flag probes differently",
			// Without the flag the digits are 392..., not 3902...
			num:   phonenumber.PhoneNumber{CountryCode: 39, NationalNumber: 236618300},
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := db.Lookup(tt.num)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestBuild_StorageStrategy validates the size heuristic: heavy label
// duplication selects the flyweight encoding, distinct labels the
// direct one, and both answer lookups identically.
func TestBuild_StorageStrategy(t *testing.T) {
	t.Run("duplicated labels select flyweight", func(t *testing.T) {
		b := NewBuilder(nil)
		for i := 0; i < 200; i++ {
			label := "Auckland"
			if i%2 == 1 {
				label = "Wellington"
			}
			b.Add(uint64(64900+i), label)
		}
		db, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, flyweightStorage, db.kind)
		assert.Equal(t, 200, db.Len())

		got, ok := db.Lookup(phonenumber.PhoneNumber{CountryCode: 64, NationalNumber: 9011234})
		require.True(t, ok) // digits 649011234, key 64901
		assert.Equal(t, "Wellington", got)
	})

	t.Run("distinct labels select direct", func(t *testing.T) {
		b := NewBuilder(nil)
		for i := 0; i < 200; i++ {
			b.Add(uint64(64900+i), fmt.Sprintf("Exchange block %03d of the metro area", i))
		}
		db, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, directStorage, db.kind)
	})

	t.Run("flyweight resolves every key to its own label", func(t *testing.T) {
		labels := map[uint64]string{}
		b := NewBuilder(nil)
		for i := 0; i < 50; i++ {
			key := uint64(64900 + i)
			labels[key] = fmt.Sprintf("block %d", i%3)
			b.Add(key, labels[key])
		}
		db, err := b.Build()
		require.NoError(t, err)
		require.Equal(t, flyweightStorage, db.kind)

		for i, key := range db.keys {
			assert.Equal(t, labels[key], db.label(i))
		}
	})
}

func TestBuild_Errors(t *testing.T) {
	_, err := NewBuilder(nil).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entries")
}

func TestAdd_LastLabelWins(t *testing.T) {
	db, err := NewBuilder(nil).
		Add(1201, "old").
		Add(1201, "New Jersey").
		Build()
	require.NoError(t, err)

	got, ok := db.Lookup(phonenumber.PhoneNumber{CountryCode: 1, NationalNumber: 2015550123})
	require.True(t, ok)
	assert.Equal(t, "New Jersey", got)
}
