package progress

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"wipefile_enterprise/internal/wipe"
)

// ConsoleSink выводит прогресс затирания в терминал. На интерактивном
// терминале строка прогресса перерисовывается через \r, иначе каждому
// файлу соответствует отдельная строка.
type ConsoleSink struct {
	out   *os.File
	tty   bool
	total int
	start time.Time
}

// NewConsoleSink создаёт консольный вывод прогресса поверх out
func NewConsoleSink(out *os.File) *ConsoleSink {
	return &ConsoleSink{
		out: out,
		tty: term.IsTerminal(int(out.Fd())),
	}
}

// Initialize фиксирует общее число файлов до начала обработки
func (c *ConsoleSink) Initialize(totalFiles int) {
	c.total = totalFiles
	c.start = time.Now()

	if c.total > 0 {
		fmt.Fprintf(c.out, "Затирание %d файлов...\n", c.total)
	}
}

// Report выводит одно событие прогресса
func (c *ConsoleSink) Report(ev wipe.ProgressEvent) {
	if ev.Total <= 0 {
		return
	}

	percent := float64(ev.Completed) / float64(ev.Total) * 100
	elapsed := time.Since(c.start)

	if c.tty {
		fmt.Fprintf(c.out, "\r[%d/%d] %.1f%% | Прошло: %02d:%02d:%02d | %s",
			ev.Completed, ev.Total, percent,
			int(elapsed.Hours()), int(elapsed.Minutes())%60, int(elapsed.Seconds())%60,
			ev.CurrentTarget)
		return
	}

	fmt.Fprintf(c.out, "[%d/%d] %s\n", ev.Completed, ev.Total, ev.CurrentTarget)
}

// Complete завершает строку прогресса
func (c *ConsoleSink) Complete() {
	if c.tty && c.total > 0 {
		fmt.Fprintln(c.out) // Новая строка после \r-прогресса
	}
}
