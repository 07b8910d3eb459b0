package offline

import "errors"

// ErrUnknownOperation возвращается, если операция с таким ID не найдена
var ErrUnknownOperation = errors.New("unknown operation")
