package converter

// NumeralConverter 定义中文数字转换器接口
type NumeralConverter interface {
	ToChinese(raw string) (string, error) // 将输入的阿拉伯数字文本转换为中文数字，负数加“负”
}
