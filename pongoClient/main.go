package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/lguibr/asciiring/helpers"
	"golang.org/x/net/websocket"
	"golang.org/x/sys/unix"
)

type TargetMessage struct {
	TargetY int `json:"targetY"`
}

type RoleAssignmentMessage struct {
	MessageType string `json:"messageType"`
	Role        string `json:"role"`
	ClientID    string `json:"clientId"`
}

func setRawMode(fileDescriptor uintptr) (*unix.Termios, error) {
	terminalSettings, err := unix.IoctlGetTermios(int(fileDescriptor), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	savedTerminalSettings := *terminalSettings
	terminalSettings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	terminalSettings.Oflag &^= unix.OPOST
	terminalSettings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	terminalSettings.Cflag &^= unix.CSIZE | unix.PARENB
	terminalSettings.Cflag |= unix.CS8

	if err := unix.IoctlSetTermios(int(fileDescriptor), unix.TCSETS, terminalSettings); err != nil {
		return nil, err
	}
	return &savedTerminalSettings, nil
}

// rawLines restores carriage returns, which raw mode no longer adds.
func rawLines(text string) string {
	return strings.ReplaceAll(text, "\n", "\r\n")
}

func main() {
	addr := flag.String("addr", "localhost:3001", "server host:port")
	arenaHeight := flag.Int("height", 600, "arena height in pixels")
	paddleHeight := flag.Int("paddle", 64, "paddle height in pixels")
	step := flag.Int("step", 24, "pixels per key press")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/subscribe?format=ascii", *addr)
	websocketConnection, err := websocket.Dial(url, "", "http://localhost/")
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer websocketConnection.Close()

	var role RoleAssignmentMessage
	if err := websocket.JSON.Receive(websocketConnection, &role); err != nil {
		fmt.Println("Error reading role from server:", err)
		return
	}

	go func() {
		helpers.ClearScreen()
		for {
			var frame string
			if err := websocket.Message.Receive(websocketConnection, &frame); err != nil {
				fmt.Print(rawLines(fmt.Sprintln("Error reading from server:", err)))
				return
			}
			// Home the cursor instead of clearing to avoid flicker.
			fmt.Print("\033[H" + rawLines(frame) + rawLines(fmt.Sprintf("%s as %s  (w/s move, q quit)\n", role.ClientID, role.Role)))
		}
	}()

	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		fmt.Println("Error setting raw mode:", err)
		return
	}
	restore := func() {
		unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, savedTerminalSettings)
	}
	defer restore()

	interruptSignalChannel := make(chan os.Signal, 1)
	signal.Notify(interruptSignalChannel, os.Interrupt)
	go func() {
		<-interruptSignalChannel
		restore()
		os.Exit(0)
	}()

	maxTarget := *arenaHeight - *paddleHeight
	target := maxTarget / 2
	for {
		singleByteBuffer := make([]byte, 1)
		if _, err := os.Stdin.Read(singleByteBuffer); err != nil {
			return
		}
		switch singleByteBuffer[0] {
		case 'w', 'W':
			target -= *step
		case 's', 'S':
			target += *step
		case 'q', 'Q', 3: // 3 is Ctrl-C in raw mode
			fmt.Print(rawLines("Quitting game\n"))
			return
		default:
			continue
		}
		target = max(0, min(target, maxTarget))

		if role.Role != "controller" {
			continue
		}
		if err := websocket.JSON.Send(websocketConnection, TargetMessage{TargetY: target}); err != nil {
			fmt.Print(rawLines(fmt.Sprintln("Error sending to server:", err)))
			return
		}
	}
}
