package cmd

import (
	"encoding/json"
	"fmt"
)

// outputJSON prints v as indented JSON to stdout.
func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
