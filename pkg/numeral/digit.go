package numeral

import "strconv"

// Zero 是零的中文数字，也是零折叠时识别的标记
const Zero = "零"

var digitTable = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// Digit 将 0-9 的整数转换为对应的中文数字
func Digit(d int) (string, error) {
	if d < 0 || d >= len(digitTable) {
		return "", newError(ErrDigitOutOfRange, strconv.Itoa(d))
	}
	return digitTable[d], nil
}
