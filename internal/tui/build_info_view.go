// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/gumi-collection/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("应用: 求求你别再买了\n版本: %s\n构建日期: %s\n提交: %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
	return renderPage("关于", body, "esc: 返回")
}
