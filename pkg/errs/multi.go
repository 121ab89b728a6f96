// Package errs содержит составную ошибку для случаев, когда
// откат транзакции сам завершился ошибкой и терять нельзя ни одну из причин.
package errs

import (
	"strconv"
	"strings"
)

type MultiError struct {
	causes []error
}

// NewMultiError собирает составную ошибку из непустого списка причин.
// Порядок причин сохраняется: первой идет исходная ошибка, затем ошибка отката.
func NewMultiError(causes ...error) *MultiError {
	filtered := make([]error, 0, len(causes))
	for _, err := range causes {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{causes: filtered}
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	for i, err := range m.causes {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap отдает все причины, чтобы errors.Is и errors.As видели каждую.
func (m *MultiError) Unwrap() []error {
	return m.causes
}

func (m *MultiError) Causes() []error {
	causes := make([]error, len(m.causes))
	copy(causes, m.causes)
	return causes
}
