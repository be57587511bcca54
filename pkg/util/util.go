package util

import (
	"io"
	"log"
)

func Close(closer io.Closer) {
	err := closer.Close()
	if err != nil {
		log.Printf("close faild with error: %v\n", err)
	}
}
