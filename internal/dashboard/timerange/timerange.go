// Package timerange 看板全局时间筛选
// DateRange 只用于前端筛选，不落库
package timerange

import (
	"fmt"
	"time"
)

// TimeRangeOption 时间范围选项
const (
	OptionWeek    = "WEEK"
	OptionMonth   = "MONTH"
	OptionQuarter = "QUARTER"
	OptionYear    = "YEAR"
	OptionAll     = "ALL"
	OptionCustom  = "CUSTOM"
)

const dateLayout = "2006-01-02"

// DateRange 解析后的时间范围
type DateRange struct {
	Option    string `json:"option"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Label     string `json:"label"`
}

// Resolve 把选项解析为具体起止日期
// CUSTOM 需要调用方自带起止日期，直接用 NewCustom
func Resolve(option string, now time.Time) (DateRange, error) {
	end := now
	var start time.Time
	var label string

	switch option {
	case OptionWeek:
		// 回溯到本周周一
		offset := (int(now.Weekday()) + 6) % 7
		start = now.AddDate(0, 0, -offset)
		label = "本周"
	case OptionMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		label = "本月"
	case OptionQuarter:
		qMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), qMonth, 1, 0, 0, 0, 0, now.Location())
		label = "本季度"
	case OptionYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		label = "本年"
	case OptionAll:
		return DateRange{Option: OptionAll, Label: "全部"}, nil
	default:
		return DateRange{}, fmt.Errorf("unknown time range option: %s", option)
	}

	return DateRange{
		Option:    option,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Label:     label,
	}, nil
}

// NewCustom 构造自定义时间范围
func NewCustom(startDate, endDate string) DateRange {
	return DateRange{
		Option:    OptionCustom,
		StartDate: startDate,
		EndDate:   endDate,
		Label:     startDate + " ~ " + endDate,
	}
}

// Contains 判断报告周是否落在范围内
// ALL 全包含；日期按字典序比较（YYYY-MM-DD 保证与时间序一致）
func (r DateRange) Contains(reportWeek string) bool {
	if r.Option == OptionAll {
		return true
	}
	if r.StartDate != "" && reportWeek < r.StartDate {
		return false
	}
	if r.EndDate != "" && reportWeek > r.EndDate {
		return false
	}
	return true
}
