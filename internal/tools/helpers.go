package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ExtractTicketNumber extracts the ticket_number argument, accepting the
// JSON number and string encodings interchangeably. Callers get back the
// raw textual form; canonicalization happens in the topdesk package.
func ExtractTicketNumber(args map[string]interface{}) (string, error) {
	v, ok := args["ticket_number"]
	if !ok || v == nil {
		return "", fmt.Errorf("ticket_number parameter is required")
	}

	switch n := v.(type) {
	case string:
		if n == "" {
			return "", fmt.Errorf("ticket_number parameter is required")
		}
		return n, nil
	case float64:
		return strconv.FormatInt(int64(n), 10), nil
	case json.Number:
		return n.String(), nil
	default:
		return "", fmt.Errorf("ticket_number must be a number or a numeric string")
	}
}
