// Command huffile is an interactive file compressor and converter.
// It reads menu choices and file paths from standard input and
// dispatches to the container codec and the zip conversion helpers.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/seif/huffile"
	"github.com/seif/huffile/pathcheck"
	"github.com/seif/huffile/zipconv"
)

var log = logging.MustGetLogger("huffile")

const progName = "huffile"

const menuText = `
=== File Compressor and Converter ===
1. Compress file (Huffman)
2. Decompress .huf file
3. Convert .huf to .zip
4. Extract .huf from ZIP
5. Convert .huf to .txt
6. Convert ZIP (with .huf) to .txt
7. Convert .txt to .zip
8. Extract .txt from ZIP
9. Exit
`

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:.4s} %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

type prompter struct {
	in *bufio.Scanner
}

func (p *prompter) ask(label string) (string, bool) {
	fmt.Printf("%s: ", label)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// askPair prompts for a source and destination path and validates
// both before any work starts.
func (p *prompter) askPair(srcLabel, dstLabel string) (string, string, bool) {
	src, ok := p.ask(srcLabel)
	if !ok {
		return "", "", false
	}
	dst, ok := p.ask(dstLabel)
	if !ok {
		return "", "", false
	}
	if err := pathcheck.Source(src); err != nil {
		log.Errorf("%v", err)
		return "", "", false
	}
	if err := pathcheck.Destination(dst); err != nil {
		log.Errorf("%v", err)
		return "", "", false
	}
	return src, dst, true
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func main() {
	startLogging()
	p := &prompter{in: bufio.NewScanner(os.Stdin)}

	for {
		fmt.Print(menuText)
		choice, ok := p.ask("Enter choice")
		if !ok {
			return
		}

		switch choice {
		case "1":
			src, dst, ok := p.askPair("Input file (any type)", "Output file (.huf)")
			if !ok {
				continue
			}
			if err := huffile.CompressFile(src, dst); err != nil {
				log.Errorf("compress: %v", err)
				continue
			}
			log.Infof("compressed %d bytes to %d bytes", fileSize(src), fileSize(dst))
		case "2":
			src, dst, ok := p.askPair("Compressed file (.huf)", "Output file")
			if !ok {
				continue
			}
			kind, err := huffile.DecompressFile(src, dst)
			if err != nil {
				log.Errorf("decompress: %v", err)
				continue
			}
			log.Infof("decompressed to %s file %q", kind, dst)
		case "3":
			src, dst, ok := p.askPair("Input Huffman file (.huf)", "Output ZIP file (.zip)")
			if !ok {
				continue
			}
			if err := zipconv.FileToZip(src, dst); err != nil {
				log.Errorf("convert: %v", err)
				continue
			}
			log.Infof("created ZIP archive %q", dst)
		case "4":
			src, dst, ok := p.askPair("Input ZIP file (.zip)", "Output .huf file")
			if !ok {
				continue
			}
			if err := zipconv.ExtractSuffix(src, ".huf", dst); err != nil {
				log.Errorf("extract: %v", err)
				continue
			}
			log.Infof("extracted container to %q", dst)
		case "5":
			src, dst, ok := p.askPair("Input Huffman file (.huf)", "Output text file (.txt)")
			if !ok {
				continue
			}
			if err := zipconv.HufToTxt(src, dst); err != nil {
				log.Errorf("convert: %v", err)
				continue
			}
			log.Infof("converted %q to text file %q", src, dst)
		case "6":
			src, dst, ok := p.askPair("Input ZIP file (.zip)", "Output text file (.txt)")
			if !ok {
				continue
			}
			if err := zipconv.ZipToTxt(src, dst); err != nil {
				log.Errorf("convert: %v", err)
				continue
			}
			log.Infof("converted %q to text file %q", src, dst)
		case "7":
			src, dst, ok := p.askPair("Input text file (.txt)", "Output ZIP file (.zip)")
			if !ok {
				continue
			}
			if err := zipconv.FileToZip(src, dst); err != nil {
				log.Errorf("convert: %v", err)
				continue
			}
			log.Infof("created ZIP archive %q containing %q", dst, src)
		case "8":
			src, dst, ok := p.askPair("Input ZIP file (.zip)", "Output text file (.txt)")
			if !ok {
				continue
			}
			if err := zipconv.ExtractSuffix(src, ".txt", dst); err != nil {
				log.Errorf("extract: %v", err)
				continue
			}
			log.Infof("extracted text file to %q", dst)
		case "9":
			fmt.Println("Exiting the program.")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}
