package export

import "strconv"

// ColumnName converts a 1-based column index to its spreadsheet letter name
// using full base-26 arithmetic: 1 -> A, 26 -> Z, 27 -> AA, 52 -> AZ, 53 -> BA.
// Every Excel serializer in this package goes through here; single-character
// arithmetic silently corrupts layouts past column 26.
func ColumnName(n int) string {
	if n < 1 {
		return ""
	}
	var name []byte
	for n > 0 {
		n--
		name = append([]byte{byte('A' + n%26)}, name...)
		n /= 26
	}
	return string(name)
}

// Cell returns the A1-style reference for a 1-based (column, row) pair.
func Cell(col, row int) string {
	return ColumnName(col) + strconv.Itoa(row)
}
