package console

import (
	"fmt"
	"io"
	"strconv"

	"BikeshareExplorer/src/processor"
	"BikeshareExplorer/src/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-gota/gota/dataframe"
)

const endOfData = "!!!!End of data is reached. If continued, raw data from the top of the dataset is displayed!!!!"

// Pager 分页展示过滤后的原始数据
type Pager struct {
	out  io.Writer
	size int
}

func NewPager(out io.Writer, size int) *Pager {
	if size <= 0 {
		size = 5
	}
	return &Pager{out: out, size: size}
}

// Raw 去掉派生列后的原始数据
func Raw(df dataframe.DataFrame) dataframe.DataFrame {
	return utils.DropColumns(df, processor.DerivedColumns...)
}

// Page 输出从offset开始的一页，返回下一页的起点
// 到达末尾时输出提示并回到0
func (p *Pager) Page(df dataframe.DataFrame, offset int) int {
	n := df.Nrow()
	if offset >= n {
		offset = 0
	}

	end := offset + p.size
	last := end >= n
	if last {
		end = n
	}

	fmt.Fprintln(p.out, renderRows(df, offset, end))
	if last {
		fmt.Fprintln(p.out, "\n"+WarningStyle.Render(endOfData))
		return 0
	}
	return end
}

// Run 在用户回答 yes 时持续翻页
func (p *Pager) Run(df dataframe.DataFrame, confirm func(string) (bool, error)) error {
	raw := Raw(df)

	show, err := confirm(fmt.Sprintf("\nWould you like to see %d lines of raw data? Enter yes or no.\n", p.size))
	if err != nil || !show {
		return err
	}
	if raw.Nrow() == 0 {
		fmt.Fprintln(p.out, NoticeStyle.Render(noData))
		return nil
	}

	fmt.Fprintf(p.out, "dataframe rows is %d\n", raw.Nrow())
	offset := 0
	for show {
		offset = p.Page(raw, offset)
		show, err = confirm(fmt.Sprintf("\nWould you like to see next %d lines of raw data? Enter yes or no.\n", p.size))
		if err != nil {
			return err
		}
	}
	return nil
}

// renderRows 以表格形式输出 [start, end) 行，首列为行号
func renderRows(df dataframe.DataFrame, start, end int) string {
	indexes := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indexes = append(indexes, i)
	}
	records := df.Subset(indexes).Records()

	headers := append([]string{"#"}, records[0]...)
	rows := make([][]string, 0, len(records)-1)
	for i, rec := range records[1:] {
		rows = append(rows, append([]string{strconv.Itoa(start + i)}, rec...))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}
