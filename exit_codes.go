package main

import (
	"errors"
	"os"

	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/resume"
)

// 退出码：0 成功，1 其他错误，2 用法或输入格式错误，3 文件读写失败，4 渲染后端失败。
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
	ExitIO      = 3
	ExitRender  = 4
)

var (
	// ErrUsage 表示参数或标志无效。
	ErrUsage = errors.New("invalid usage")
	// ErrInputRead 表示无法读取输入文件。
	ErrInputRead = errors.New("cannot read input")
	// ErrWriteOutput 表示无法写入 PDF 或调试文件。
	ErrWriteOutput = errors.New("cannot write output")
)

// exitCodeFor 依据错误链选择退出码，调用方需使用 %w 包装。
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, layout.ErrRenderBackend) {
		return ExitRender
	}

	if errors.Is(err, ErrInputRead) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, resume.ErrMalformedInput) ||
		errors.Is(err, layout.ErrInvalidConfig) ||
		errors.Is(err, layout.ErrUnknownLayout) ||
		errors.Is(err, layout.ErrInvalidProfile) {
		return ExitUsage
	}

	return ExitGeneral
}
