package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// gvizResponse mirrors the part of the gviz payload this tool reads.
type gvizResponse struct {
	Table struct {
		Rows []struct {
			C []*struct {
				V any `json:"v"`
			} `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

// parseGviz strips the JS wrapper around a gviz response and decodes the row
// grid. The endpoint returns something like
// `/*O_o*/\ngoogle.visualization.Query.setResponse({...});` and the braces
// delimit the only JSON document inside.
func parseGviz(body []byte) ([][]string, error) {
	text := string(body)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, errors.New("no JSON object in gviz response")
	}
	var decoded gvizResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &decoded); err != nil {
		return nil, fmt.Errorf("decode gviz response: %w", err)
	}
	rows := make([][]string, 0, len(decoded.Table.Rows))
	for _, row := range decoded.Table.Rows {
		cells := make([]string, 0, len(row.C))
		for _, cell := range row.C {
			if cell == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, cellString(cell.V))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// cellString renders a gviz cell value as text. Absent values become "".
func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
