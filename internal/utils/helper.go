package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Localized messages for the statuses the storefront maps to fixed strings.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Dữ liệu không hợp lệ. Vui lòng kiểm tra lại thông tin.",
	http.StatusUnauthorized:        "Bạn cần đăng nhập để thực hiện thao tác này.",
	http.StatusForbidden:           "Bạn không có quyền thực hiện thao tác này.",
	http.StatusInternalServerError: "Lỗi server. Vui lòng thử lại sau.",
}

func WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes {"message": ...}; an empty message falls back to the
// fixed localized string for the status code.
func WriteJSONError(w http.ResponseWriter, message string, code int) {
	if message == "" {
		if m, ok := statusMessages[code]; ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}
	WriteJSON(w, code, map[string]string{"message": message})
}

func StrPtr(s string) *string {
	return &s
}

func Float64Ptr(f float64) *float64 {
	return &f
}

func ToUint(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	return uint(n), err
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FloatOrZero treats a missing price as zero.
func FloatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
