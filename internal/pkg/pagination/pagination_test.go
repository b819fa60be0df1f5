package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name                 string
		page, limit          int
		wantPage, wantLimit  int
		wantOffset           int
	}{
		{"defaults", 0, 0, 1, DefaultLimit, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"limit capped", 2, 500, 2, MaxLimit, MaxLimit},
		{"plain", 3, 15, 3, 15, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.page, tt.limit)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("Normalize(%d, %d) = {%d %d %d}, want {%d %d %d}",
					tt.page, tt.limit, p.Page, p.Limit, p.Offset, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(&Params{Page: 2, Limit: 10}, 25)
	if meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("HasNext/HasPrev = %v/%v, want true/true", meta.HasNext, meta.HasPrev)
	}

	meta = GetMeta(&Params{Page: 1, Limit: 10}, 0)
	if meta.TotalPages != 0 || meta.HasNext || meta.HasPrev {
		t.Errorf("empty set meta = %+v", meta)
	}
}
