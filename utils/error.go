package utils

import "errors"

var (
	ErrorRecordNotFound   = errors.New("record not found")
	ErrorInvalidDateRange = errors.New("from date and to date are required")
)

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
