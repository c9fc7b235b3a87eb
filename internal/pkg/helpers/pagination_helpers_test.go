package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 25, 50, 25},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -5, 10, 0, 10},
		{"zero size uses default", 2, 0, 10, DefaultPageSize},
		{"oversize clamps to default", 2, 500, 10, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Fatalf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 1, 10)
	if info.TotalPages != 5 {
		t.Errorf("expected 5 total pages for 42 items of 10, got %d", info.TotalPages)
	}
	if info.CurrentPage != 1 || info.PageSize != 10 || info.TotalItems != 42 {
		t.Errorf("unexpected pagination info: %+v", info)
	}
}

func TestNewPaginationInfo_OversizeClampsLikeOffsetLimit(t *testing.T) {
	info := NewPaginationInfo(42, 1, 1000)
	if info.PageSize != DefaultPageSize {
		t.Errorf("expected page size clamped to %d, got %d", DefaultPageSize, info.PageSize)
	}
	if info.TotalPages != 5 {
		t.Errorf("expected 5 total pages for 42 items of %d, got %d", DefaultPageSize, info.TotalPages)
	}
	_, limit := CalculateOffsetLimit(1, 1000)
	if limit != info.PageSize {
		t.Errorf("envelope page size %d disagrees with query limit %d", info.PageSize, limit)
	}
}

func TestNewPaginationInfo_EmptyFirstPage(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Errorf("expected 1 total page for an empty first page, got %d", info.TotalPages)
	}
	if info.CurrentPage != 1 {
		t.Errorf("expected current page 1, got %d", info.CurrentPage)
	}
}

func TestNewPaginationInfo_PageBeyondEnd(t *testing.T) {
	info := NewPaginationInfo(10, 9, 10)
	if info.CurrentPage != 1 {
		t.Errorf("expected current page clamped to 1, got %d", info.CurrentPage)
	}
	if info.TotalPages != 1 {
		t.Errorf("expected 1 total page, got %d", info.TotalPages)
	}
}
