//go:generate enumer -type=status -transform=upper

package tcp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ormanli/interest-te/internal/app/interest"
)

type response struct {
	status status
	body   string
}

func (r response) String() string {
	return fmt.Sprintf("RESULT|%s|%s", r.status, r.body)
}

type status int

const (
	Accepted status = iota
	Rejected
)

// accepted builds a response carrying the computed final value.
func accepted(result interest.Result) response {
	return response{
		status: Accepted,
		body:   strconv.FormatFloat(result.FinalValue, 'f', -1, 64),
	}
}

// rejected builds a response carrying the rejection reason.
func rejected(reason string) response {
	return response{
		status: Rejected,
		body:   capitalizeFirst(reason),
	}
}

func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
