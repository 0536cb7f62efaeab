package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrRenderBackend 由所有测量、绘制与序列化失败匹配。
	ErrRenderBackend = errors.New("render backend failure")
	// ErrUnknownLayout 表示模板名称不存在。
	ErrUnknownLayout = errors.New("unknown layout")
	// ErrInvalidConfig 表示布局参数或页面几何无效。
	ErrInvalidConfig = errors.New("invalid layout config")
	// ErrInvalidProfile 表示 profile 文件内容无效。
	ErrInvalidProfile = errors.New("invalid layout profile")
)

// BackendError 记录失败的后端操作，例如 "wrap"、"draw"、"render"。
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render backend: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render backend: %s failed", e.Op)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Is 使 errors.Is(err, ErrRenderBackend) 对所有 BackendError 成立。
func (e *BackendError) Is(target error) bool { return target == ErrRenderBackend }

// NewBackendError 包装后端错误；已是 BackendError 时原样返回。
func NewBackendError(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}
