// hidp-dump decodes HIDP control-channel frames supplied as hex strings
// or binary files, logs the decoded messages, and optionally appends
// capture records to a trace file.
package main

import (
    "encoding/hex"
    "flag"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "go.uber.org/zap"

    "github.com/eyanje/hidp/pkg/config"
    "github.com/eyanje/hidp/pkg/hidp"
    "github.com/eyanje/hidp/pkg/hidp/codec"
    "github.com/eyanje/hidp/pkg/observability"
    "github.com/eyanje/hidp/pkg/trace"
)

func main() {
    cfgPath := flag.String("config", "", "path to YAML config (optional)")
    doTrace := flag.Bool("trace", false, "append capture records to the trace directory")
    dir := flag.String("dir", "in", "direction tag recorded for each frame")
    flag.Parse()
    if flag.NArg() == 0 {
        fatalf("usage: hidp-dump [flags] <hex-frame|file> ...")
    }

    cfg, err := config.Load(*cfgPath)
    if err != nil { fatalf("load config: %v", err) }
    logger, err := observability.SetupLogger(cfg.Log)
    if err != nil { fatalf("setup logger: %v", err) }
    defer logger.Sync()

    reg := codec.NewRegistry()
    if c, err := codec.CBOR(); err == nil {
        reg.Register(c)
    }
    format, err := trace.ParseFormat(cfg.Trace.Format)
    if err != nil { fatalf("%v", err) }

    var sink *os.File
    if *doTrace {
        if err := os.MkdirAll(cfg.Trace.Dir, 0o755); err != nil { fatalf("trace dir: %v", err) }
        p := filepath.Join(cfg.Trace.Dir, "hidp-dump."+cfg.Trace.Format)
        sink, err = os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
        if err != nil { fatalf("open trace file: %v", err) }
        defer sink.Close()
    }

    mux := newLoggingMux(logger)
    for _, arg := range flag.Args() {
        frame, err := loadFrame(arg)
        if err != nil {
            logger.Error("read frame", zap.String("arg", arg), zap.Error(err))
            continue
        }
        m, err := hidp.Unmarshal(frame)
        if err != nil {
            logger.Error("decode frame", zap.String("arg", arg), zap.Error(err))
            continue
        }
        if err := mux.Dispatch(m); err != nil {
            logger.Error("dispatch", zap.Error(err))
            continue
        }
        if sink != nil {
            b, err := trace.EncodeRecord(reg, format, trace.NewRecord(*dir, m))
            if err != nil { fatalf("encode record: %v", err) }
            if _, err := sink.Write(b); err != nil { fatalf("write record: %v", err) }
        }
    }
}

// newLoggingMux registers a handler per supported message type so each
// decoded frame is logged with its type-specific fields.
func newLoggingMux(logger *zap.Logger) *hidp.Mux {
    mux := hidp.NewMux()
    mux.HandleFunc(hidp.MsgHandshake, func(m hidp.Message) error {
        logger.Info("handshake", zap.Uint8("result", uint8(m.Parameter())))
        return nil
    })
    mux.HandleFunc(hidp.MsgHidControl, func(m hidp.Message) error {
        logger.Info("hid_control", zap.Uint8("op", uint8(m.Parameter())))
        return nil
    })
    mux.HandleFunc(hidp.MsgGetProtocol, func(m hidp.Message) error {
        logger.Info("get_protocol")
        return nil
    })
    mux.HandleFunc(hidp.MsgSetProtocol, func(m hidp.Message) error {
        logger.Info("set_protocol", zap.Uint8("mode", uint8(m.Parameter())))
        return nil
    })
    payload := func(name string) func(m hidp.Message) error {
        return func(m hidp.Message) error {
            logger.Info(name,
                zap.Uint8("report_type", uint8(m.Parameter())),
                zap.Int("len", len(m.Data())),
                zap.String("payload", hex.EncodeToString(m.Data())))
            return nil
        }
    }
    mux.HandleFunc(hidp.MsgGetReport, payload("get_report"))
    mux.HandleFunc(hidp.MsgSetReport, payload("set_report"))
    mux.HandleFunc(hidp.MsgData, payload("data"))
    return mux
}

// loadFrame treats arg as a file path if it exists, else as a hex string
// (spaces allowed).
func loadFrame(arg string) ([]byte, error) {
    if st, err := os.Stat(arg); err == nil && !st.IsDir() {
        return os.ReadFile(arg)
    }
    return hex.DecodeString(strings.ReplaceAll(arg, " ", ""))
}

func fatalf(format string, args ...any) {
    fmt.Fprintf(os.Stderr, format+"\n", args...)
    os.Exit(1)
}
