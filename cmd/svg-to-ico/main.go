package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	svgico "github.com/Ortham/svg-to-ico"
	"github.com/Ortham/svg-to-ico/utils"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┬  ┬┌─┐   ┌┬┐┌─┐   ┬┌─┐┌─┐
└─┐└┐┌┘│ ┬    │ │ │   ││  │ │
└─┘ └┘ └─┘    ┴ └─┘   ┴└─┘└─┘

Multi-resolution icon converter.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source image (SVG, PNG, JPEG, GIF, BMP, TIFF or WebP)")
	destination = flag.String("out", pipeName, "Destination ICO file")
	dpi         = flag.Float64("dpi", svgico.DefaultDPI, "DPI used to interpret the source document")
	sizes       = flag.String("sizes", "", "Comma separated list of icon sizes to embed")
	profile     = flag.String("profile", "", "YAML file holding a conversion preset")
	watch       = flag.Bool("watch", false, "Re-run the conversion whenever the source file changes")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of sizes to rasterize concurrently")
)

// spinner used to instantiate and call the progress indicator.
var spinner *utils.Spinner

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	proc := &svgico.Processor{
		DPI:     *dpi,
		Workers: *workers,
	}

	if len(*profile) > 0 {
		prof, err := svgico.LoadProfile(*profile)
		if err != nil {
			log.Fatalf(utils.DecorateText("Failed to load the conversion profile: %v\n", utils.ErrorMessage), err)
		}
		proc.Sizes = prof.Sizes
		proc.DPI = prof.DPI
	}
	if len(*sizes) > 0 {
		s, err := parseSizes(*sizes)
		if err != nil {
			log.Fatalf(utils.DecorateText("Failed to parse the size list: %v\n", utils.ErrorMessage), err)
		}
		proc.Sizes = s
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SVG-TO-ICO", utils.StatusMessage),
		utils.DecorateText("is rendering the icon...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)
	spinner.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SVG-TO-ICO", utils.StatusMessage),
		utils.DecorateText("is rendering the icon... ✔", utils.DefaultMessage))
	proc.Spinner = spinner

	// Capture CTRL-C and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	if *watch {
		if err := watchLoop(proc); err != nil {
			log.Fatalf(utils.DecorateText("Watch failed: %v\n", utils.ErrorMessage), err)
		}
		return
	}

	now := time.Now()
	err := convert(proc)
	printStatus(*destination, err)

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// tmpSource holds the temporary file a remote source was downloaded into.
var tmpSource *os.File

// convert resolves the source and destination, runs the conversion pipeline
// and releases both files on every exit path.
func convert(proc *svgico.Processor) error {
	src, dst, err := pathToFile(*source, *destination)
	if err != nil {
		return err
	}
	defer func() {
		if c, ok := src.(io.Closer); ok && src != os.Stdin {
			c.Close()
		}
		if c, ok := dst.(io.Closer); ok && dst != os.Stdout {
			c.Close()
		}
		if tmpSource != nil {
			os.Remove(tmpSource.Name())
			tmpSource = nil
		}
	}()

	return proc.Process(src, dst)
}

// watchLoop re-runs the conversion whenever the source file changes.
// Pipes cannot be watched, so both endpoints must be regular files.
func watchLoop(proc *svgico.Processor) error {
	if *source == pipeName || *destination == pipeName || utils.IsValidUrl(*source) {
		return errors.New("the watch mode needs regular files for both the source and the destination")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the parent directory: editors commonly replace the file on
	// save, which drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(*source)); err != nil {
		return err
	}

	reportWatched(convert(proc))

	target := filepath.Clean(*source)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			reportWatched(convert(proc))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, utils.DecorateText("\nWatch error: %v\n", utils.ErrorMessage), err)
		}
	}
}

// pathToFile converts the source and destination paths to readable and writable files.
func pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source path is a local image or URL.
	if utils.IsValidUrl(in) {
		tmp, err := utils.DownloadFile(in)
		if err != nil {
			return nil, nil, err
		}
		tmpSource = tmp
		src = tmp
	} else {
		// Check if the source is a pipe name or a regular file.
		if in == pipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, nil, errors.New("`-` should be used with a pipe for stdin")
			}
			src = os.Stdin
		} else {
			src, err = os.Open(in)
			if err != nil {
				return nil, nil, fmt.Errorf("unable to open the source file: %v", err)
			}
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, fmt.Errorf("unable to create the destination directory: %v", err)
			}
		}
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create the destination file: %v", err)
		}
	}
	return src, dst, nil
}

// parseSizes converts the comma separated size list into icon edge lengths.
func parseSizes(list string) ([]uint, error) {
	var sizes []uint
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if len(field) == 0 {
			continue
		}
		v, err := strconv.ParseUint(field, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid icon size", field)
		}
		sizes = append(sizes, uint(v))
	}
	if len(sizes) == 0 {
		return nil, errors.New("the size list is empty")
	}
	return sizes, nil
}

// reportWatched reports a single watched conversion without leaving the
// watch loop: a save captured halfway through can fail and succeed on the
// next event.
func reportWatched(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError converting the image: %v\n", utils.ErrorMessage), err)
		return
	}
	fmt.Fprintf(os.Stderr, "\nThe icon has been saved as: %s %s\n",
		utils.DecorateText(filepath.Base(*destination), utils.SuccessMessage),
		utils.DefaultColor,
	)
}

// printStatus displays the relevant information about the conversion process.
func printStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError converting the image: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		os.Exit(1)
	}
	if fname != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe icon has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
