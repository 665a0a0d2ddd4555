package main

import (
    "encoding/hex"
    "flag"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strings"

    "github.com/eyanje/hidp/pkg/hidp"
)

func main() {
    outDir := flag.String("out", "testdata/frame", "output directory for binary frames")
    flag.Parse()
    if err := os.MkdirAll(*outDir, 0o755); err != nil { log.Fatal(err) }

    // 1) Handshake replies, one per result code
    results := map[string]hidp.Parameter{
        "successful":      hidp.ResultSuccessful,
        "not_ready":       hidp.ResultNotReady,
        "err_unsupported": hidp.ResultErrUnsupportedRequest,
        "err_fatal":       hidp.ResultErrFatal,
    }
    for name, res := range results {
        b := hidp.Marshal(hidp.Handshake{Result: res})
        writeOut(*outDir, fmt.Sprintf("frame_handshake_%s.bin", name), b)
    }

    // 2) Input report transfer with a boot-keyboard sized payload
    report := make([]byte, 8)
    for i := range report { report[i] = byte(i) }
    writeOut(*outDir, "frame_data_input.bin", hidp.Marshal(hidp.DataInput(report)))

    // 3) Feature report request and push
    writeOut(*outDir, "frame_get_report.bin",
        hidp.Marshal(hidp.GetReport{ReportType: hidp.ReportFeature, Request: []byte{0x01}}))
    writeOut(*outDir, "frame_set_report.bin",
        hidp.Marshal(hidp.SetReport{ReportType: hidp.ReportFeature, Report: []byte{0x01, 0xAB, 0xCD}}))

    // 4) Protocol mode exchange
    writeOut(*outDir, "frame_get_protocol.bin", hidp.Marshal(hidp.GetProtocol{}))
    writeOut(*outDir, "frame_set_protocol_report.bin",
        hidp.Marshal(hidp.SetProtocol{Mode: hidp.ProtocolReport}))

    // 5) Empty-payload data frame
    writeOut(*outDir, "frame_data_empty.bin", hidp.Marshal(hidp.DataOther(nil)))

    fmt.Println("Generated HIDP frames in", *outDir)
}

func writeOut(dir, name string, b []byte) {
    p := filepath.Join(dir, name)
    if err := os.WriteFile(p, b, 0o644); err != nil { log.Fatal(err) }
    fmt.Printf("%-32s %3d bytes  %s\n", name, len(b), groupedHex(b))
}

func groupedHex(b []byte) string {
    if len(b) == 0 { return "" }
    enc := hex.EncodeToString(b)
    var out []string
    for i := 0; i < len(enc); i += 4 {
        j := i + 4
        if j > len(enc) { j = len(enc) }
        out = append(out, enc[i:j])
    }
    return strings.Join(out, " ")
}
