package utils

import (
	"bytes"
	"strconv"
)

// FlexString aceita tanto string quanto número (ou null) em um campo JSON.
// Os formulários enviam números como texto, a API aceita os dois.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*s = FlexString(unquoted)
		return nil
	}

	*s = FlexString(data)
	return nil
}

func (s FlexString) String() string {
	return string(s)
}
