package summary

import (
	"shiftdesk/internal/core"
	"shiftdesk/internal/database/mongodb/model"
)

// OrdersSummary 班次內訂單折疊結果；Total 不含 online（線上金流另行對帳）
type OrdersSummary struct {
	Cash       float64 `json:"cash"`
	Card       float64 `json:"card"`
	Online     float64 `json:"online"`
	Total      float64 `json:"total"`
	CheckCount int     `json:"checkCount"`
	GuestCount int     `json:"guestCount"`
}

// TaskProgress 檢查清單完成度；沒有任務視為全部完成
type TaskProgress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

// SummarizeOrders 將訂單折疊成各收款方式小計。
// 純函式：順序無關，不碰 DB，重跑結果一致。
func SummarizeOrders(orders []*model.Order) OrdersSummary {
	var result OrdersSummary
	for _, order := range orders {
		if order == nil {
			continue
		}
		switch order.Tender {
		case core.TenderCash:
			result.Cash += order.Amount
		case core.TenderCard:
			result.Card += order.Amount
		case core.TenderOnline:
			result.Online += order.Amount
		}
		result.CheckCount++
		result.GuestCount += order.GuestCount
	}
	result.Total = result.Cash + result.Card
	return result
}

// SummarizeTasks 回傳完成度百分比（四捨五入）
func SummarizeTasks(tasks []*model.ShiftTask) TaskProgress {
	progress := TaskProgress{Total: len(tasks)}
	if progress.Total == 0 {
		progress.Percent = 100
		return progress
	}
	for _, task := range tasks {
		if task != nil && task.Completed {
			progress.Completed++
		}
	}
	progress.Percent = (progress.Completed*100 + progress.Total/2) / progress.Total
	return progress
}
