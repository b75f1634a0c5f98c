package numeral

import (
	"slices"
	"strings"
)

// MaxDigits 最多支持转换的位数
const MaxDigits = 16

// Convert 将十进制数字字符串转换为中文数字，例如 "1001" => "一千零一"
// 输入不能带符号，负数由调用方处理后加“负”
func Convert(input string) (string, error) {
	if input == "" {
		return "", newError(ErrInvalidType, input)
	}
	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return "", newError(ErrInvalidType, input)
		}
	}
	if len(input) > MaxDigits {
		return "", newError(ErrTooLong, input)
	}

	// 去掉高位的零，全零直接返回“零”
	digits := strings.TrimLeft(input, "0")
	if digits == "" {
		return Zero, nil
	}

	// 最低位放在最前面
	tokens := make([]string, len(digits))
	for i := range digits {
		token, err := Digit(int(digits[len(digits)-1-i] - '0'))
		if err != nil {
			return "", err
		}
		tokens[i] = token
	}

	var processed []string
	for count, group := range partition(tokens) {
		marked, err := ApplyGroupMarker(CollapseZeros(Decorate(group)), count)
		if err != nil {
			return "", newError(ErrTooLong, input)
		}
		processed = append(processed, marked...)
	}

	slices.Reverse(processed)
	return join(processed), nil
}

// join 按读法顺序拼接，去掉空位，合并跨组相邻的零，并去掉末尾的零
func join(tokens []string) string {
	var b strings.Builder
	pendingZero := false
	for _, token := range tokens {
		switch token {
		case "":
		case Zero:
			pendingZero = b.Len() > 0
		default:
			if pendingZero {
				b.WriteString(Zero)
				pendingZero = false
			}
			b.WriteString(token)
		}
	}
	if b.Len() == 0 {
		return Zero
	}
	return b.String()
}
