package loop

import "log"

type logger interface {
	Error(err error)
}

type fallbackLogger struct {
}

func (f *fallbackLogger) Error(err error) {
	log.Println(err.Error())
}
