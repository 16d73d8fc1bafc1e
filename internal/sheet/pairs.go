package sheet

import (
	"context"
	"fmt"
	"strings"

	"quizhub/internal/match"
)

// PairSet is a matching interlude's pair data plus its display column titles.
type PairSet struct {
	LeftTitle  string
	RightTitle string
	Pairs      []match.Pair
}

// Pairs fetches and maps the pair set for a sheet.
func (l *Loader) Pairs(ctx context.Context, sheetID string) (PairSet, error) {
	rows, err := l.Client.FetchTable(ctx, sheetID)
	if err != nil {
		return PairSet{}, err
	}
	set, err := ParsePairRows(rows)
	if err != nil {
		return PairSet{}, fmt.Errorf("sheet %s: %w", sheetID, err)
	}
	return set, nil
}

// ParsePairRows maps rows to matching pairs. Row 0 supplies the column
// titles; later rows map to (left, right), and rows with an empty side are
// discarded.
func ParsePairRows(rows [][]string) (PairSet, error) {
	set := PairSet{LeftTitle: "Left", RightTitle: "Right"}
	if len(rows) == 0 {
		return PairSet{}, fmt.Errorf("no pair rows found")
	}
	if title := cell(rows[0], 0); title != "" {
		set.LeftTitle = title
	}
	if title := cell(rows[0], 1); title != "" {
		set.RightTitle = title
	}
	for _, row := range rows[1:] {
		left := cell(row, 0)
		right := cell(row, 1)
		if left == "" || right == "" {
			continue
		}
		set.Pairs = append(set.Pairs, match.Pair{Left: left, Right: right})
	}
	if len(set.Pairs) == 0 {
		return PairSet{}, fmt.Errorf("no usable pair rows found")
	}
	return set, nil
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
