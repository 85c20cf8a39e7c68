package cm

import "github.com/hsiuhsiu/cfkit-go/pkg/cfkit/osstatus"

var sampleBufErrs = osstatus.NewTable("CMSampleBuffer")

// CMSampleBuffer errors (kCMSampleBufferError_*).
var (
	ErrAllocFailed                  = sampleBufErrs.Define("AllocationFailed", -12730)
	ErrRequiredParameterMissing     = sampleBufErrs.Define("RequiredParameterMissing", -12731)
	ErrAlreadyHasDataBuffer         = sampleBufErrs.Define("AlreadyHasDataBuffer", -12732)
	ErrBufferNotReady               = sampleBufErrs.Define("BufferNotReady", -12733)
	ErrSampleIndexOutOfRange        = sampleBufErrs.Define("SampleIndexOutOfRange", -12734)
	ErrBufferHasNoSampleSizes       = sampleBufErrs.Define("BufferHasNoSampleSizes", -12735)
	ErrBufferHasNoSampleTimingInfo  = sampleBufErrs.Define("BufferHasNoSampleTimingInfo", -12736)
	ErrArrayTooSmall                = sampleBufErrs.Define("ArrayTooSmall", -12737)
	ErrInvalidEntryCount            = sampleBufErrs.Define("InvalidEntryCount", -12738)
	ErrCannotSubdivide              = sampleBufErrs.Define("CannotSubdivide", -12739)
	ErrSampleTimingInfoInvalid      = sampleBufErrs.Define("SampleTimingInfoInvalid", -12740)
	ErrInvalidMediaTypeForOperation = sampleBufErrs.Define("InvalidMediaTypeForOperation", -12741)
	ErrInvalidSampleData            = sampleBufErrs.Define("InvalidSampleData", -12742)
	ErrInvalidMediaFormat           = sampleBufErrs.Define("InvalidMediaFormat", -12743)
	ErrInvalidated                  = sampleBufErrs.Define("Invalidated", -12744)
	ErrDataFailed                   = sampleBufErrs.Define("DataFailed", -16750)
	ErrDataCanceled                 = sampleBufErrs.Define("DataCanceled", -16751)
)

var blockBufErrs = osstatus.NewTable("CMBlockBuffer")

// CMBlockBuffer errors (kCMBlockBufferError_*).
var (
	ErrBlockStructureAllocFailed = blockBufErrs.Define("StructureAllocationFailed", -12700)
	ErrBlockAllocFailed          = blockBufErrs.Define("BlockAllocationFailed", -12701)
	ErrBlockBadCustomBlockSource = blockBufErrs.Define("BadCustomBlockSource", -12702)
	ErrBlockBadOffsetParameter   = blockBufErrs.Define("BadOffsetParameter", -12703)
	ErrBlockBadLengthParameter   = blockBufErrs.Define("BadLengthParameter", -12704)
	ErrBlockBadPointerParameter  = blockBufErrs.Define("BadPointerParameter", -12705)
	ErrBlockEmptyBBuf            = blockBufErrs.Define("EmptyBBuf", -12706)
	ErrBlockUnallocatedBlock     = blockBufErrs.Define("UnallocatedBlock", -12707)
	ErrBlockInsufficientSpace    = blockBufErrs.Define("InsufficientSpace", -12708)
)
