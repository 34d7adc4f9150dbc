package employment

import "errors"

var ErrNoEmployeeMapping = errors.New("No employee mapping found")
