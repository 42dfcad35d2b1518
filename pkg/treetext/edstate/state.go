// Package edstate persists the last browsed directory and open file
// between runs. Persistence failures are logged and never surface to
// the user.
package edstate

import (
	"os"
	"path/filepath"

	"github.com/moesbr-222/tree-text-editor/pkg/fsutils"
)

const defaultSettingsDir = "~/.treetext"
const stateFileName = "treetext-state.json"

var settingsDir = defaultSettingsDir
var settingsDirPath = fsutils.ExpandHome(settingsDir)

type State struct {
	CurrentDir      string `json:"current_dir,omitempty"`
	CurrentFileName string `json:"current_file_name,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(v ...any) {

}

// GetState loads the persisted state; a missing state file yields the
// zero State without an error.
func GetState() (*State, error) {
	filePath := getStateFilePath()
	var state State
	return &state, readJSON(filePath, false, &state)
}

func SaveCurrentDir(currentDir string) {
	saveSettingValue(func(state *State) {
		state.CurrentDir = currentDir
	})
}

func SaveCurrentFileName(name string) {
	saveSettingValue(func(state *State) {
		state.CurrentFileName = name
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func saveSettingValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	err := readJSON(filePath, false, &state)
	if err != nil {
		logErr("edstate: error reading state file:", err)
	}

	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("edstate: error creating settings directory:", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("edstate: settings path is not a directory")
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("edstate: error writing state file:", err)
		return
	}
}
