// lemerk-inspect loads a tree snapshot and reports its shape, the
// coordinates and hash of a chosen node, and optionally an inclusion
// proof for it. Configuration is taken from the environment:
//
//	SNAPSHOT_PATH  path to a CBOR snapshot (required)
//	NODE_INDEX     flat index of the node to inspect (default 0, the root)
//	PROVE          when true, assemble and verify an inclusion proof
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/onedge-network/lemerk"
)

func main() {
	viper.AutomaticEnv()
	viper.SetDefault("NODE_INDEX", 0)
	viper.SetDefault("PROVE", false)

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	path := viper.GetString("SNAPSHOT_PATH")
	if path == "" {
		log.Fatal("SNAPSHOT_PATH must be set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("reading snapshot", zap.String("path", path), zap.Error(err))
	}
	tree, err := lemerk.OpenSnapshot(data)
	if err != nil {
		log.Fatal("opening snapshot", zap.String("path", path), zap.Error(err))
	}

	log.Info("tree",
		zap.String("id", tree.ID().String()),
		zap.Uint64("depthLength", tree.DepthLength()),
		zap.Uint64("maxIndex", uint64(tree.MaxIndex())),
		zap.Int("blockSize", tree.BlockSize()),
		zap.Uint64("leaves", tree.LeafCount()),
		zap.String("root", hex.EncodeToString(tree.Root())),
	)

	i := lemerk.Index(viper.GetUint64("NODE_INDEX"))
	node, err := tree.NodeByIndex(i)
	if err != nil {
		log.Fatal("node lookup", zap.Uint64("index", uint64(i)), zap.Error(err))
	}

	do := lemerk.DepthOffsetFromIndex(i)
	log.Info("node",
		zap.Uint64("index", uint64(node.Index())),
		zap.Uint64("depth", do.Depth),
		zap.Uint64("offset", do.Offset),
		zap.String("hash", hex.EncodeToString(node.Hash())),
		zap.String("ancestor", describe(node.Ancestor())),
		zap.String("left", describe(node.Left())),
		zap.String("right", describe(node.Right())),
	)

	if !viper.GetBool("PROVE") {
		return
	}

	proof, err := lemerk.InclusionProof(tree, i)
	if err != nil {
		log.Fatal("assembling proof", zap.Uint64("index", uint64(i)), zap.Error(err))
	}
	ok, err := lemerk.VerifyInclusion(lemerk.NewHasher(), tree.Root(), node.Hash(), i, proof)
	if err != nil {
		log.Fatal("verifying proof", zap.Uint64("index", uint64(i)), zap.Error(err))
	}
	log.Info("inclusion proof",
		zap.Uint64("index", uint64(i)),
		zap.Int("pathLength", len(proof)),
		zap.Bool("verified", ok),
	)
}

func describe(i lemerk.Index, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d", i)
}
