// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/gumi-collection/internal/service"
)

// ErrUserQuit is returned when the user leaves the sign-in flow.
var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "账号或密码错误"
	case errors.Is(err, service.ErrLoginAlreadyExists):
		return "该账号已被注册"
	case errors.Is(err, service.ErrItemNameRequired):
		return "名称不能为空"
	case errors.Is(err, service.ErrImageTooLarge):
		return "图片太大"
	case errors.Is(err, service.ErrInvalidImage):
		return "无法识别的图片"
	case errors.Is(err, service.ErrTokenIsExpired), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "登录已过期，请重新登录"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "网络不可用或服务器无响应"
	}

	return err.Error()
}
