package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"BikeshareExplorer/src/config"
)

// Prompter 从输入流读取用户选择
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	cfg   *config.Config
	vocab config.Vocabulary
}

func NewPrompter(in io.Reader, out io.Writer, cfg *config.Config, vocab config.Vocabulary) *Prompter {
	return &Prompter{
		in:    bufio.NewScanner(in),
		out:   out,
		cfg:   cfg,
		vocab: vocab,
	}
}

// readLine 输入结束时返回 io.EOF
func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// Ask 反复提问直到 validate 通过
func (p *Prompter) Ask(question, retry string, validate func(string) (string, error)) (string, error) {
	fmt.Fprint(p.out, question)
	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		v, err := validate(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprint(p.out, retry)
	}
}

// Selection 依次询问城市、月份、星期
func (p *Prompter) Selection() (Selection, error) {
	fmt.Fprintln(p.out, TitleStyle.Render("Hello! Let's explore some US bikeshare data!"))

	cities := strings.Join(p.cfg.CityNames(), ", ")
	cityQ := fmt.Sprintf("Please enter one of the following city names - %s : ", cities)
	city, err := p.Ask(cityQ, cityQ, func(s string) (string, error) {
		return ValidateCity(s, p.cfg)
	})
	if err != nil {
		return Selection{}, err
	}

	month, err := p.Ask(
		`Please enter a valid month name (january thru december) or "all" : `,
		`Please enter a valid month name or "all" : `,
		func(s string) (string, error) { return ValidateMonth(s, p.vocab) },
	)
	if err != nil {
		return Selection{}, err
	}

	day, err := p.Ask(
		`Please enter a valid day of week (monday thru sunday) or "all" : `,
		`Please enter a valid day of week or "all" : `,
		func(s string) (string, error) { return ValidateDay(s, p.vocab) },
	)
	if err != nil {
		return Selection{}, err
	}

	fmt.Fprintln(p.out, Divider)
	return Selection{City: city, Month: month, Day: day}, nil
}

// Confirm 只有输入 yes 才返回true
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	return normalize(line) == "yes", nil
}
