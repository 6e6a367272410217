package main

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrVerifyPDF indicates a generated PDF failed structural validation.
var ErrVerifyPDF = errors.New("PDF verification failed")

// disableConfigDir keeps pdfcpu from creating its config directory.
var disableConfigDir = sync.OnceFunc(api.DisableConfigDir)

// verifyPDF validates pdf with pdfcpu and checks its page count.
func verifyPDF(pdf []byte, wantPages int) error {
	disableConfigDir()
	conf := model.NewDefaultConfiguration()

	if err := api.Validate(bytes.NewReader(pdf), conf); err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyPDF, err)
	}

	n, err := api.PageCount(bytes.NewReader(pdf), conf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyPDF, err)
	}
	if n != wantPages {
		return fmt.Errorf("%w: %d pages, want %d", ErrVerifyPDF, n, wantPages)
	}
	return nil
}
