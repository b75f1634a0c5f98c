package numeral

import (
	"errors"
	"fmt"
)

// Kind 标识转换失败的类别
type Kind int

const (
	KindInvalidType     Kind = iota + 1 // 输入包含非数字字符或为空
	KindTooLong                         // 数字位数超过上限
	KindDigitOutOfRange                 // 单个数字不在 0-9 范围内
)

func (k Kind) String() string {
	switch k {
	case KindInvalidType:
		return "InvalidType"
	case KindTooLong:
		return "TooLong"
	case KindDigitOutOfRange:
		return "DigitOutOfRange"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error 是转换过程中返回的错误，调用方可以按 Kind 区分处理
type Error struct {
	Kind  Kind
	Input string
	Msg   string
}

// 用于 errors.Is 比较的哨兵错误，只比较 Kind
var (
	ErrInvalidType     = &Error{Kind: KindInvalidType, Msg: "input is not a decimal digit sequence"}
	ErrTooLong         = &Error{Kind: KindTooLong, Msg: fmt.Sprintf("length exceeds maximum supported (%d digits)", MaxDigits)}
	ErrDigitOutOfRange = &Error{Kind: KindDigitOutOfRange, Msg: "digit must be an integer in [0,9]"}
)

func (e *Error) Error() string {
	if e.Input == "" {
		return "numeral: " + e.Msg
	}
	return fmt.Sprintf("numeral: %s: %q", e.Msg, e.Input)
}

// Is 让 errors.Is(err, ErrTooLong) 之类的判断按错误类别匹配
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf 从错误链中取出转换错误的类别，非转换错误返回 0
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(base *Error, input string) *Error {
	return &Error{Kind: base.Kind, Input: input, Msg: base.Msg}
}
