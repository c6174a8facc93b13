package grid

import "testing"

func TestGetGridCoords(t *testing.T) {
	tests := []struct {
		index int
		cols  int
		wantX int
		wantY int
	}{
		// 6-column wire table
		{0, 6, 0, 0},
		{1, 6, 1, 0},
		{5, 6, 5, 0},
		{6, 6, 0, 1},
		{7, 6, 1, 1},
		{35, 6, 5, 5},

		// single column
		{0, 1, 0, 0},
		{9, 1, 0, 9},
	}

	for _, tc := range tests {
		gotX, gotY := GetGridCoords(tc.index, tc.cols)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("GetGridCoords(%d, %d) = (%d, %d); want (%d, %d)", tc.index, tc.cols, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	tests := []struct {
		index  int
		cols   int
		cellW  int
		cellH  int
		wantPX int
		wantPY int
	}{
		{0, 6, 120, 18, 0, 0},
		{1, 6, 120, 18, 120, 0},
		{6, 6, 120, 18, 0, 18},
		{8, 6, 120, 18, 240, 18},
	}

	for _, tc := range tests {
		gotPX, gotPY := CellOrigin(tc.index, tc.cols, tc.cellW, tc.cellH)
		if gotPX != tc.wantPX || gotPY != tc.wantPY {
			t.Errorf("CellOrigin(%d, %d, %d, %d) = (%d, %d); want (%d, %d)",
				tc.index, tc.cols, tc.cellW, tc.cellH, gotPX, gotPY, tc.wantPX, tc.wantPY)
		}
	}
}
