package bulletin

import "strings"

// CategoryOrder 成绩单分组的展示顺序。
// 列表中的分组按列表顺序排在前面，未列出的分组按首次出现的顺序追加。
type CategoryOrder []string

// NormalizeCategoryOrder 去除首尾空白，丢弃空项与重复项
func NormalizeCategoryOrder(labels []string) CategoryOrder {
	seen := make(map[string]bool, len(labels))
	out := make(CategoryOrder, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// group 按分组归并科目行；组内保持输入顺序
func (o CategoryOrder) group(rows []SubjectRow) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup

	for _, label := range o {
		index[label] = len(groups)
		groups = append(groups, CategoryGroup{Label: label})
	}
	for _, r := range rows {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, CategoryGroup{Label: r.Category})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}

	// 丢弃没有科目的预设分组
	out := groups[:0]
	for _, g := range groups {
		if len(g.Rows) == 0 {
			continue
		}
		for _, r := range g.Rows {
			g.TotalCoefficient += r.Coefficient
			g.TotalWeighted += r.Weighted
		}
		out = append(out, g)
	}
	return out
}
