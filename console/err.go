package console

import (
	"errors"

	"github.com/ezrec/microemu/translate"
)

var f = translate.From

var (
	ErrNoSavePath = errors.New(f("no snapshot save path"))
)
