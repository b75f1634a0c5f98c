package numeral

// GroupSize 每组包含的数字位数（个、十、百、千）
const GroupSize = 4

// tierMarkers 组内位修饰符，下标与组内存储位置对应，个位不加修饰
var tierMarkers = [GroupSize]string{"", "十", "百", "千"}

// groupMarkers 组修饰符，下标为组序号。第 3 组沿用“万”，与“亿”组合为万亿
var groupMarkers = [...]string{"", "万", "亿", "万"}

// Decorate 给一组中文数字添加十、百、千修饰符，零不加修饰
// 组内下标 0 为个位，返回新的切片，不修改入参
func Decorate(group []string) []string {
	out := make([]string, len(group))
	for i, token := range group {
		if token != Zero && i < GroupSize {
			token += tierMarkers[i]
		}
		out[i] = token
	}
	return out
}

// CollapseZeros 去除一组中多余的零
// 先清空存储顺序开头连续的零（即该组读法末尾的零），再把相邻的零只保留最后一个
func CollapseZeros(group []string) []string {
	out := append([]string(nil), group...)
	if !containsZero(out) {
		return out
	}
	for i := range out {
		if out[i] != Zero {
			break
		}
		out[i] = ""
	}
	for i := 0; i+1 < len(out); i++ {
		if out[i] == Zero && out[i+1] == Zero {
			out[i] = ""
		}
	}
	return out
}

// ApplyGroupMarker 根据组序号添加万、亿修饰符
// 修饰符追加在存储下标 0 上，也就是该组读法的最后一个位置
func ApplyGroupMarker(group []string, count int) ([]string, error) {
	if count < 0 || count >= len(groupMarkers) {
		return nil, newError(ErrTooLong, "")
	}
	out := append([]string(nil), group...)
	if count == 0 || len(out) == 0 {
		return out, nil
	}
	if count == 1 && isBlank(out) {
		// 万位到千万位都为零时不加“万”，只留一个零占位
		out[0] = Zero
		return out, nil
	}
	out[0] += groupMarkers[count]
	return out, nil
}

// partition 按 GroupSize 将数字序列切分成若干组，最后一组可能不足四位
func partition(tokens []string) [][]string {
	groups := make([][]string, 0, (len(tokens)+GroupSize-1)/GroupSize)
	for start := 0; start < len(tokens); start += GroupSize {
		end := min(start+GroupSize, len(tokens))
		groups = append(groups, tokens[start:end:end])
	}
	return groups
}

func containsZero(group []string) bool {
	for _, token := range group {
		if token == Zero {
			return true
		}
	}
	return false
}

// isBlank 判断一组是否全部为零或空
func isBlank(group []string) bool {
	for _, token := range group {
		if token != Zero && token != "" {
			return false
		}
	}
	return true
}
