package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/csvcodec"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, user)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Register(ctx, user)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return listLoadedMsg{err: svc.Load(ctx)}
	}
}

func (m appModel) cmdLoadMore() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return listLoadedMsg{more: true, err: svc.LoadMore(ctx)}
	}
}

func (m appModel) cmdFacets() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		facets, err := svc.Facets(ctx)
		return facetsLoadedMsg{facets: facets, err: err}
	}
}

func (m appModel) cmdTogglePin(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return toggledMsg{err: svc.TogglePin(ctx, id)}
	}
}

func (m appModel) cmdToggleReminder(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return toggledMsg{err: svc.ToggleReminder(ctx, id)}
	}
}

// cmdSaveItem uploads imageSource first when it names a local file.
func (m appModel) cmdSaveItem(item models.CollectionItem, imageSource string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		if isLocalImage(imageSource) {
			f, err := os.Open(imageSource)
			if err != nil {
				return itemSavedMsg{err: fmt.Errorf("open image: %w", err)}
			}
			url, err := svc.UploadImage(ctx, filepath.Base(imageSource), f)
			f.Close()
			if err != nil {
				return itemSavedMsg{err: err}
			}
			item.ImageURL = url
		}

		_, err := svc.Save(ctx, item)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdImport(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: fmt.Errorf("open %s: %w", path, err)}
		}
		defer f.Close()

		result, err := svc.Import(ctx, f)
		return importDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdExportAll(dir string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := svc.ExportAll(ctx, &buf); err != nil {
			return fileWrittenMsg{err: err}
		}
		return writeFile(filepath.Join(dir, svc.ExportFileName()), buf.Bytes())
	}
}

func cmdWriteTemplate(dir string) tea.Cmd {
	return func() tea.Msg {
		return writeFile(filepath.Join(dir, csvcodec.TemplateFileName), []byte(csvcodec.Template()))
	}
}

// cmdCopyLoaded copies the loaded items as CSV.
func (m appModel) cmdCopyLoaded() tea.Cmd {
	svc := m.services.SessionService
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := svc.Export(&buf); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: clipboard.WriteAll(buf.String())}
	}
}

func (m appModel) cmdClearAll() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		n, err := svc.ClearAll(ctx)
		return clearedMsg{deleted: n, err: err}
	}
}

func (m appModel) cmdProfile() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		profile, err := svc.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m appModel) cmdSaveProfile(profile models.Profile) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		saved, err := svc.SaveProfile(ctx, profile)
		if err != nil {
			return profileLoadedMsg{profile: profile.WithDisplayFallbacks(), err: err}
		}
		return profileLoadedMsg{profile: saved}
	}
}

func (m appModel) cmdStats() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		bundle, err := svc.Stats(ctx)
		return statsLoadedMsg{bundle: bundle, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return signedOutMsg{err: svc.SignOut(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdPoll() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func writeFile(path string, data []byte) tea.Msg {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fileWrittenMsg{err: fmt.Errorf("write %s: %w", path, err)}
	}
	return fileWrittenMsg{path: path}
}

// isLocalImage reports whether v looks like a file path rather than a URL.
func isLocalImage(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(strings.ToLower(v), prefix) {
			return false
		}
	}
	return true
}

func importSummary(r models.ImportResult) string {
	if r.Failed == 0 {
		return fmt.Sprintf("导入完成: %d 条", r.Applied)
	}
	return fmt.Sprintf("导入完成: 成功 %d 条, 失败 %d 条", r.Applied, r.Failed)
}

func clearedSummary(n int64) string {
	return fmt.Sprintf("已清空 %d 条记录", n)
}
