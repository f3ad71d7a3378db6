package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind - 에러 분류
type Kind string

const (
	KindConfiguration  Kind = "configuration"
	KindInputEncoding  Kind = "input_encoding"
	KindRateLimited    Kind = "rate_limited"
	KindServiceBusy    Kind = "service_busy"
	KindEmptyResult    Kind = "empty_result"
	KindContentBlocked Kind = "content_blocked"
	KindUnknownRemote  Kind = "unknown_remote"
)

// 사용자에게 그대로 보여주는 고정 메시지
const (
	MsgServiceBusy    = "The service is currently busy. Please wait a moment and try again."
	MsgContentBlocked = "The generated image was blocked for safety reasons. Please adjust your text or logo and try again."
)

// Sentinel - errors.Is 비교용
var (
	ErrConfiguration  = &Error{Kind: KindConfiguration}
	ErrInputEncoding  = &Error{Kind: KindInputEncoding}
	ErrRateLimited    = &Error{Kind: KindRateLimited}
	ErrServiceBusy    = &Error{Kind: KindServiceBusy}
	ErrEmptyResult    = &Error{Kind: KindEmptyResult}
	ErrContentBlocked = &Error{Kind: KindContentBlocked}
	ErrUnknownRemote  = &Error{Kind: KindUnknownRemote}
)

// Error - 분류된 에러 (Message는 사용자 노출용, Err는 원인)
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil && e.Err.Error() != msg {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is - Kind가 같으면 같은 에러로 취급
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New - 분류된 에러 생성
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap - 원인 에러를 감싸서 분류
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Configuration - 잘못된 설정 (네트워크 호출 전에 발생)
func Configuration(format string, args ...interface{}) *Error {
	return New(KindConfiguration, fmt.Sprintf(format, args...))
}

// InputEncoding - 이미지 입력을 읽을 수 없음
func InputEncoding(message string, err error) *Error {
	return Wrap(KindInputEncoding, message, err)
}

// ServiceBusy - 재시도 한도 초과
func ServiceBusy(err error) *Error {
	return Wrap(KindServiceBusy, MsgServiceBusy, err)
}

// EmptyResult - 응답에 이미지 없음
func EmptyResult(message string) *Error {
	return New(KindEmptyResult, message)
}

// ContentBlocked - 안전 필터로 차단됨
func ContentBlocked() *Error {
	return New(KindContentBlocked, MsgContentBlocked)
}

// UnknownRemote - 분류되지 않은 원격 에러 (원래 메시지 유지)
func UnknownRemote(err error) *Error {
	return Wrap(KindUnknownRemote, err.Error(), err)
}

// KindOf - 에러 체인에서 Kind 추출 (분류 안 된 에러는 unknown_remote)
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknownRemote
}

// MessageOf - 사용자 노출용 메시지
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus - Kind별 HTTP 상태 코드
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindConfiguration, KindInputEncoding:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindServiceBusy:
		return http.StatusServiceUnavailable
	case KindContentBlocked:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
