package logger

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/communitycal/events-api/pkg/helper"
)

var debugMode = true

// SetDebugMode set colored debug log on/off
func SetDebugMode(debug bool) {
	debugMode = debug
}

// LogWithDefer log with defer function, useful for boot steps
func LogWithDefer(str string) (deferFunc func()) {
	fmt.Printf("%s %s ", time.Now().Format(helper.TimeFormatLogger), str)
	return func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mERROR: %v\x1b[0m\n", r)
			panic(r)
		}
		fmt.Println("\x1b[32;1mSUCCESS\x1b[0m")
	}
}

// LogRed log red color
func LogRed(str string) {
	if debugMode {
		printLog(helper.Red, str)
	}
}

// LogYellow log yellow color
func LogYellow(str string) {
	if debugMode {
		printLog(helper.Yellow, str)
	}
}

// LogGreen log green color
func LogGreen(str string) {
	if debugMode {
		printLog(helper.Green, str)
	}
}

func printLog(color []byte, str string) {
	log.Printf("%s%s%s\n", color, str, helper.Reset)
}

// Fatal log fatal and exit
func Fatal(v ...interface{}) {
	log.SetOutput(os.Stderr)
	log.Fatal(v...)
}
