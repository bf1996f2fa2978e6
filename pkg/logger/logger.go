package logger

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	cInf  = color.New(color.FgCyan, color.Bold).SprintFunc()
	cWarn = color.New(color.FgYellow, color.Bold).SprintFunc()
	cErr  = color.New(color.FgRed, color.Bold).SprintFunc()
	cSucc = color.New(color.FgGreen, color.Bold).SprintFunc()
	cFatl = color.New(color.BgRed, color.FgWhite, color.Bold).SprintFunc()
	cTime = color.New(color.FgHiBlack).SprintFunc()
)

func init() {
	log.SetFlags(0)
}

func timeStamp() string {
	return cTime(time.Now().Format("2006-01-02 15:04"))
}

func LogInfo(format string, v ...interface{}) {
	fmt.Printf("%s %s %s\n", timeStamp(), cInf("[INFO]"), fmt.Sprintf(format, v...))
}

func LogSuccess(format string, v ...interface{}) {
	fmt.Printf("%s %s %s\n", timeStamp(), cSucc("[OK]"), fmt.Sprintf(format, v...))
}

func LogWarn(format string, v ...interface{}) {
	fmt.Printf("%s %s %s\n", timeStamp(), cWarn("[WARN]"), fmt.Sprintf(format, v...))
}

func LogError(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s %s\n", timeStamp(), cErr("[ERR]"), fmt.Sprintf(format, v...))
}

func LogFatal(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s %s\n", timeStamp(), cFatl("[FATAL]"), fmt.Sprintf(format, v...))
	os.Exit(1)
}
