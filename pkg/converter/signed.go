package converter

import (
	"fmt"
	"log"
	"strings"

	"github.com/yleoer/numeral/pkg/numeral"
	"golang.org/x/text/width"
)

// Negative 负数前缀
const Negative = "负"

// signedConverter 是 NumeralConverter 的一个实现，负责处理符号和全角字符
type signedConverter struct {
	logger *log.Logger
}

// NewSignedConverter 返回一个处理正负号的转换器实例
func NewSignedConverter(logger *log.Logger) NumeralConverter {
	return &signedConverter{logger: logger}
}

// ToChinese 将输入文本转换为中文数字
// 空输入返回空字符串；转换失败时返回包装后的错误，可用 numeral.KindOf 取出错误类别
func (c *signedConverter) ToChinese(raw string) (string, error) {
	text := width.Narrow.String(strings.TrimSpace(raw))
	if text == "" {
		return "", nil
	}
	negative := false
	switch text[0] {
	case '-':
		negative = true
		text = text[1:]
	case '+':
		text = text[1:]
	}
	result, err := numeral.Convert(text)
	if err != nil {
		c.logger.Printf("WARN: Failed to convert %q: %v", raw, err)
		return "", fmt.Errorf("failed to convert %q: %w", raw, err)
	}
	if negative && result != numeral.Zero {
		result = Negative + result
	}
	c.logger.Printf("Converted %q => %s", raw, result)
	return result, nil
}
