package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition_Covers(t *testing.T) {
	partition := &Partition{
		Key:    "p500:962:342:5000",
		Params: SearchParams{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 5400, BucketMeters: 5000},
	}

	tests := []struct {
		name  string
		query SearchParams
		want  bool
	}{
		{
			name:  "same center smaller radius",
			query: SearchParams{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 4600, BucketMeters: 5000},
			want:  true,
		},
		{
			name:  "shifted center inside",
			query: SearchParams{Lat: 48.1530, Lng: 17.1077, RadiusMeters: 4600, BucketMeters: 5000},
			want:  true,
		},
		{
			name:  "circle pokes out",
			query: SearchParams{Lat: 48.1900, Lng: 17.1077, RadiusMeters: 4600, BucketMeters: 5000},
			want:  false,
		},
		{
			name:  "different bucket",
			query: SearchParams{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 1000, BucketMeters: 1000},
			want:  false,
		},
		{
			name:  "different category",
			query: SearchParams{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 4600, BucketMeters: 5000, Category: "cafe"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, partition.Covers(tt.query))
		})
	}
}
