// Command yidsyl adds syllable boundaries to Yiddish word lists and
// hyphenates free text into fixed-width lines.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joliciel/syllabify"
	"github.com/joliciel/syllabify/lines"
	"github.com/joliciel/syllabify/wordlist"
)

var (
	inputPath  string
	outputPath string
	systemName string
	lineLength int

	rootCmd = &cobra.Command{
		Use:   "yidsyl",
		Short: "Yiddish syllable boundaries and hyphenation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	syllabifyCmd = &cobra.Command{
		Use:   "syllabify",
		Short: "Add syllable boundaries to a word list, one word per line",
		RunE:  runSyllabify,
	}

	hyphenateCmd = &cobra.Command{
		Use:   "hyphenate",
		Short: "Hyphenate free text into fixed-width lines",
		RunE:  runHyphenate,
	}

	splitCmd = &cobra.Command{
		Use:   "split",
		Short: "Split free text into a word list, one word per line",
		RunE:  runSplit,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "Input file, or - for stdin")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "-", "Output file, or - for stdout")
	syllabifyCmd.Flags().StringVarP(&systemName, "system", "s", "jacobs", "Syllabification system: jacobs or viler")
	hyphenateCmd.Flags().StringVarP(&systemName, "system", "s", "jacobs", "Syllabification system: jacobs or viler")
	hyphenateCmd.Flags().IntVarP(&lineLength, "length", "l", lines.DefaultWidth, "Maximum line length for hyphenation")
	rootCmd.AddCommand(syllabifyCmd, hyphenateCmd, splitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openInput() (io.ReadCloser, error) {
	if inputPath == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inputPath)
}

func openOutput() (io.WriteCloser, error) {
	if outputPath == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(outputPath)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func newSyllabifier() (*syllabify.Syllabifier, error) {
	system, err := syllabify.ParseSystem(systemName)
	if err != nil {
		return nil, err
	}
	return syllabify.New(system)
}

func runSyllabify(cmd *cobra.Command, args []string) error {
	syl, err := newSyllabifier()
	if err != nil {
		return err
	}
	in, err := openInput()
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	words := wordlist.NewReader(in)
	buffered := bufio.NewWriter(out)
	for {
		word, err := words.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, err := buffered.WriteString(syl.Syllabify(word) + "\n"); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

func runHyphenate(cmd *cobra.Command, args []string) error {
	syl, err := newSyllabifier()
	if err != nil {
		return err
	}
	in, err := openInput()
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close()

	text, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	buffered := bufio.NewWriter(out)
	for _, line := range lines.NewHyphenator(syl, lineLength).BreakLines(string(text)) {
		if _, err := buffered.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

func runSplit(cmd *cobra.Command, args []string) error {
	in, err := openInput()
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := openOutput()
	if err != nil {
		return err
	}
	defer out.Close()
	return wordlist.Split(in, out)
}
