package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY       = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS     = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS    = 40002 // 400 - 無效的請求標頭
	INVALID_CLOSING_FIELDS = 40003 // 400 - 收班欄位格式錯誤（記錄用，正常流程會強制轉 0）
	INVALID_EVENT_TYPE     = 40004 // 400 - 不在封閉集合內的事件型別

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED    = 40100 // 401 - 未授權
	INVALID_SESSION = 40101 // 401 - 會話失效
	FORBIDDEN       = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND       = 40400 // 404 - 資源未找到
	NO_ACTIVE_SHIFT = 40401 // 404 - 查無上班中的班次可收
	TASK_NOT_FOUND  = 40402 // 404 - 查無該班次底下的檢查表項目

	// 40900 ~ 40999: 狀態衝突 (409 系列)
	ACTIVE_SHIFT_EXISTS = 40900 // 409 - 同一員工同一門市已有上班中的班次

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)
	JOURNAL_UNAVAILABLE = 50003 // 503 - 事件日誌暫時不可寫（可重試）
)
