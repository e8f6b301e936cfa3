package store

import "testing"

func TestPageNormalize(t *testing.T) {
	cases := []struct {
		in   Page
		want Page
	}{
		{Page{}, Page{Number: 1, Size: DefaultPageSize}},
		{Page{Number: -3, Size: -1}, Page{Number: 1, Size: DefaultPageSize}},
		{Page{Number: 2, Size: 25}, Page{Number: 2, Size: 25}},
		{Page{Number: 1, Size: 5000}, Page{Number: 1, Size: MaxPageSize}},
	}
	for _, c := range cases {
		if got := c.in.normalize(); got != c.want {
			t.Errorf("normalize(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
