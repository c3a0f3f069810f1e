// Package api is the HTTP/WebSocket surface. Every business response uses
// the uniform envelope {code, message, data, traceId} with HTTP 200; non-200
// statuses are reserved for transport failures.
package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// Business error codes. Ranges: 40000 parameter, 40400 not found, 40900
// conflict, 50000 system, 51000 third-party vendor.
const (
	CodeOK            = 0
	CodeInvalidParam  = 40000
	CodeNotFound      = 40400
	CodeConflict      = 40900
	CodeQuotaExceeded = 40910
	CodeAllExhausted  = 40911
	CodeSystemError   = 50000
	CodeVendorError   = 51000
)

// Envelope is the uniform response body.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	TraceID string      `json:"traceId"`
}

// Supported locales. zh is the fallback.
const (
	localeZH = "zh"
	localeEN = "en"
)

// messages is the localized catalog for envelope messages.
var messages = map[int]map[string]string{
	CodeOK:            {localeZH: "成功", localeEN: "success"},
	CodeInvalidParam:  {localeZH: "参数错误", localeEN: "invalid parameter"},
	CodeNotFound:      {localeZH: "资源不存在", localeEN: "resource not found"},
	CodeConflict:      {localeZH: "操作冲突", localeEN: "operation conflict"},
	CodeQuotaExceeded: {localeZH: "该服务商语音识别配额已用尽", localeEN: "ASR quota exceeded for provider"},
	CodeAllExhausted:  {localeZH: "所有语音识别服务配额均已用尽", localeEN: "all ASR provider quotas exhausted"},
	CodeSystemError:   {localeZH: "系统错误", localeEN: "system error"},
	CodeVendorError:   {localeZH: "第三方服务错误", localeEN: "third-party service error"},
}

// locale resolves the response language from Accept-Language. Only en is
// recognized; everything else falls back to zh.
func locale(c *echo.Context) string {
	accept := c.Request().Header.Get("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if lang == localeEN || strings.HasPrefix(lang, "en-") {
			return localeEN
		}
		if lang == localeZH || strings.HasPrefix(lang, "zh-") {
			return localeZH
		}
	}
	return localeZH
}

// message renders a code in the request locale, with an optional detail
// suffix for parameter errors.
func message(c *echo.Context, code int, detail string) string {
	byLocale, ok := messages[code]
	if !ok {
		byLocale = messages[CodeSystemError]
	}
	msg := byLocale[locale(c)]
	if detail != "" {
		msg = msg + ": " + detail
	}
	return msg
}

// ok writes a success envelope.
func ok(c *echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, &Envelope{
		Code:    CodeOK,
		Message: message(c, CodeOK, ""),
		Data:    data,
		TraceID: traceID(c),
	})
}

// fail writes a business-error envelope. Still HTTP 200: the transport
// worked, the operation did not.
func fail(c *echo.Context, code int, detail string) error {
	return c.JSON(http.StatusOK, &Envelope{
		Code:    code,
		Message: message(c, code, detail),
		Data:    nil,
		TraceID: traceID(c),
	})
}
