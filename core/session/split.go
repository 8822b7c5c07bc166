package session

import "strings"

// Split breaks a command line into tokens on whitespace, honoring simple
// quoting: a token that opens with a quote character but doesn't close it
// pulls in the following tokens, re-joined with single spaces, until one
// ends with the matching quote or the line runs out. Matching surrounding
// quotes are then stripped. Unmatched quotes silently take the rest of the
// line as one token. Already-unquoted input splits to the same tokens it
// would re-join to.
func Split(line string) []string {
	fields := strings.Fields(line)

	var tokens []string
	for i := 0; i < len(fields); i++ {
		token := fields[i]

		if quote := token[0]; (quote == '"' || quote == '\'') && token[len(token)-1] != quote {
			for i+1 < len(fields) {
				i++
				token += " " + fields[i]
				if strings.HasSuffix(fields[i], string(quote)) {
					break
				}
			}
		}

		if len(token) >= 2 {
			first, last := token[0], token[len(token)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				token = token[1 : len(token)-1]
			}
		}

		tokens = append(tokens, token)
	}

	return tokens
}
