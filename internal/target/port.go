package target

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pranshuparmar/shut/pkg/model"
)

var ErrInvalidPort = errors.New("Port expected: 0..65535")

// ParsePort parses the decimal port argument given on the command line. A
// single leading '+' is allowed; whitespace is not.
func ParsePort(arg string) (model.Port, error) {
	digits := strings.TrimPrefix(arg, "+")
	if digits == "" {
		return 0, ErrInvalidPort
	}
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidPort, arg)
	}
	return model.Port(n), nil
}
