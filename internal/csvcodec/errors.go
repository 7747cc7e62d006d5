package csvcodec

import "errors"

var (
	// ErrNoValidRows is returned by Import when the input holds no data rows.
	// Its text is shown to the user as is.
	ErrNoValidRows = errors.New("未能识别有效的数据内容，请检查文件格式。")

	// ErrNothingToExport is returned when an export is requested for an empty collection.
	ErrNothingToExport = errors.New("当前没有可导出的数据")

	// ErrReadingInput is returned when the import source cannot be read.
	ErrReadingInput = errors.New("error reading CSV input")

	// ErrWritingOutput is returned when the export destination fails.
	ErrWritingOutput = errors.New("error writing CSV output")
)
