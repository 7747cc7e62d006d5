package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// transferModel imports a CSV file and writes exports and the template. The
// path input names the file to import or the directory to write to.
type transferModel struct {
	path   textinput.Model
	busy   bool
	status string
}

func newTransferModel() transferModel {
	p := textinput.New()
	p.Placeholder = "CSV 文件或目录路径"
	p.Width = 50
	return transferModel{path: p}
}

// dir returns the target directory for written files.
func (m transferModel) dir() string {
	v := strings.TrimSpace(m.path.Value())
	if v == "" {
		return "."
	}
	if info, err := os.Stat(v); err == nil && info.IsDir() {
		return v
	}
	return filepath.Dir(v)
}

func (m transferModel) View() string {
	out := "路径: [" + m.path.View() + "]\n\n"
	out += "导入按列顺序读取，第一行为表头；逐条写入，失败的行会被跳过。\n"
	if m.busy {
		out += "\n处理中..."
	}
	if m.status != "" {
		out += "\n" + m.status
	}
	return renderPage("导入 / 导出", out,
		"enter 导入文件  ctrl+e 导出全部  ctrl+y 复制已加载为CSV  ctrl+t 下载模板  esc 返回")
}

func (m appModel) updateTransfer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.transfer.path.Blur()
			m.currentScreen = screenList
			return m, nil
		case m.transfer.busy:
			return m, nil
		case key.Matches(keyMsg, keys.importCSV):
			path := strings.TrimSpace(m.transfer.path.Value())
			if path == "" {
				m.showErrorf("请输入要导入的 CSV 文件路径")
				return m, nil
			}
			m.transfer.busy = true
			m.transfer.status = ""
			return m, m.cmdImport(path)
		case key.Matches(keyMsg, keys.exportAll):
			m.transfer.busy = true
			m.transfer.status = ""
			return m, m.cmdExportAll(m.transfer.dir())
		case key.Matches(keyMsg, keys.copyCSV):
			return m, m.cmdCopyLoaded()
		case key.Matches(keyMsg, keys.template):
			m.transfer.busy = true
			return m, cmdWriteTemplate(m.transfer.dir())
		}
	}

	var cmd tea.Cmd
	m.transfer.path, cmd = m.transfer.path.Update(msg)
	return m, cmd
}
