package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/lab2439/octuuid/bitops"
)

// Snowflake ID layout within a 64-bit word, declared as bitfield masks:
// | 1 bit (0) | 41-bit timestamp | 10-bit worker ID | 12-bit sequence |
const (
	Epoch int64 = 1672531200000 // UTC: 2023-01-01 00:00:00

	TimestampBits = 41
	WorkerIDBits  = 10 // max 1024 nodes
	SequenceBits  = 12 // max 4096 IDs per node per millisecond

	ZKRootPath = "/leaf_snowflake" // Root path in Zookeeper for node registration
)

var (
	sequenceField  = bitops.Mask(SequenceBits, 0)
	workerIDField  = bitops.Mask(WorkerIDBits, SequenceBits)
	timestampField = bitops.Mask(TimestampBits, SequenceBits+WorkerIDBits)
)

// SnowflakeDriver maintains state for ID generation and Zookeeper communication.
type SnowflakeDriver struct {
	mu       sync.Mutex // ensures safe concurrent access
	lastTime int64      // Last timestamp an ID was generated
	workerID int64      // Worker ID for this instance
	sequence int64      // Sequence number for IDs in same millisecond

	zkClient *zk.Conn // Zookeeper client connection
	service  string   // Service name (affects ZK node path)
	port     int      // Port (used to derive node uniqueness)
}

// NodeInfo represents info stored for each worker in both ZK and cache file.
type NodeInfo struct {
	LastTime   int64 `json:"last_time"`   // Last timestamp this node was active
	CreateTime int64 `json:"create_time"` // Creation timestamp
	WorkerID   int64 `json:"worker_id"`   // Worker ID
}

// NewSnowflakeDriver initializes a SnowflakeDriver, registers with Zookeeper,
// and recovers or assigns a worker ID.
func NewSnowflakeDriver(zkServers []string, serviceName string, port int) (*SnowflakeDriver, error) {
	driver := &SnowflakeDriver{
		service: serviceName,
		port:    port,
	}

	c, _, err := zk.Connect(zkServers, time.Second*5)
	if err != nil {
		return nil, fmt.Errorf("connect zk failed: %v", err)
	}
	driver.zkClient = c

	workerID, err := driver.registerOrRecover()
	if err != nil {
		return nil, err
	}

	driver.workerID = workerID
	log.Printf("snowflake driver initialized with workerID: %d", workerID)

	// Periodically upload heartbeat and update state to Zookeeper and cache
	go driver.scheduledUploadTime()
	return driver, nil
}

// nodePath is the ZK key for this node. Registration and heartbeats must
// address the same key, so both go through here.
func (d *SnowflakeDriver) nodePath() string {
	return fmt.Sprintf("%s/%s/node-%d", ZKRootPath, d.service, d.port)
}

// registerOrRecover registers this node to Zookeeper or recovers assignment
// from the local cache or an existing ZK node.
func (d *SnowflakeDriver) registerOrRecover() (int64, error) {
	d.ensurePath(ZKRootPath)
	d.ensurePath(fmt.Sprintf("%s/%s", ZKRootPath, d.service))

	nodeKey := d.nodePath() // unique per service+port

	var myNodeInfo NodeInfo
	var workerID int64

	exists, _, err := d.zkClient.Exists(nodeKey)
	if err != nil {
		return 0, fmt.Errorf("check node existence failed: %v", err)
	}

	if exists {
		// Recover workerID from the ZK node
		data, _, err := d.zkClient.Get(nodeKey)
		if err != nil {
			return 0, fmt.Errorf("get node info failed: %v", err)
		}
		json.Unmarshal(data, &myNodeInfo)
		workerID = myNodeInfo.WorkerID

		// Detect system clock rollback against the recorded state
		if now := nowMillis(); now < myNodeInfo.LastTime {
			return 0, fmt.Errorf("clock moved backwards: %d < %d", now, myNodeInfo.LastTime)
		}

		log.Printf("recover workerID: %d from zk", workerID)
	} else {
		// Not registered in ZK, try local cache first
		cachedNode, err := d.loadLocalCache()
		if err == nil {
			workerID = cachedNode.WorkerID
			if now := nowMillis(); now < cachedNode.LastTime {
				return 0, fmt.Errorf("clock moved backwards: %d < %d", now, cachedNode.LastTime)
			}
			log.Printf("recover workerID: %d from local cache", workerID)
		} else {
			// Nothing found anywhere: derive an ID within the worker field range
			workerID = int64(d.port % (1 << WorkerIDBits))
		}

		now := nowMillis()
		myNodeInfo = NodeInfo{
			WorkerID:   workerID,
			LastTime:   now,
			CreateTime: now,
		}
	}

	// Register or update node info in Zookeeper
	bytes, _ := json.Marshal(myNodeInfo)
	if exists {
		_, err = d.zkClient.Set(nodeKey, bytes, -1)
	} else {
		_, err = d.zkClient.Create(nodeKey, bytes, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return 0, fmt.Errorf("register or update node info failed: %v", err)
	}

	// Save to a local cache file for local recovery
	d.saveLocalCache(myNodeInfo)
	return workerID, nil
}

func nowMillis() int64 {
	return time.Now().UnixNano() / 1e6
}

// NextID generates the next distributed unique ID in the snowflake layout.
func (d *SnowflakeDriver) NextID() (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := nowMillis()

	// Runtime clock rollback check
	if now < d.lastTime {
		offset := d.lastTime - now
		// For a small offset (<=5ms) wait for the clock to catch up
		if offset <= 5 {
			time.Sleep(time.Duration(offset) * time.Millisecond)
			now = nowMillis()
			if now < d.lastTime {
				return 0, fmt.Errorf("clock moved backwards, refused to generate id")
			}
		} else {
			return 0, fmt.Errorf("clock moved backwards too much (%d ms)", offset)
		}
	}

	if now == d.lastTime {
		// Same millisecond: advance the sequence within its field width
		d.sequence = int64(bitops.Extract(sequenceField, uint64(d.sequence+1)))
		// Sequence wrapped to zero: per-ms capacity exceeded, wait for next ms
		if d.sequence == 0 {
			for now <= d.lastTime {
				now = nowMillis()
			}
		}
	} else {
		// New millisecond: reset sequence
		d.sequence = 0
	}

	d.lastTime = now

	// Deposit the three fields into their slots of the 64-bit word
	word := bitops.Deposit(timestampField, 0, uint64(now-Epoch))
	word = bitops.Deposit(workerIDField, word, uint64(d.workerID))
	word = bitops.Deposit(sequenceField, word, uint64(d.sequence))

	return bitops.Int64(word), nil
}

// Decompose splits a snowflake ID back into its timestamp (ms since Unix
// epoch), worker ID and sequence fields.
func Decompose(id int64) (timestamp, workerID, sequence int64) {
	word := uint64(id)
	timestamp = int64(bitops.Extract(timestampField, word)) + Epoch
	workerID = int64(bitops.Extract(workerIDField, word))
	sequence = int64(bitops.Extract(sequenceField, word))
	return timestamp, workerID, sequence
}

// scheduledUploadTime periodically updates this node's info in Zookeeper and the local cache.
func (d *SnowflakeDriver) scheduledUploadTime() {
	ticker := time.NewTicker(3 * time.Second)
	nodeKey := d.nodePath()

	for range ticker.C {
		now := nowMillis()

		// If local time is behind lastTime the system clock went backwards
		if now < d.lastTime {
			log.Printf("Clock rollback detected during heartbeat! Local: %d, Last: %d", now, d.lastTime)
			continue
		}

		info := NodeInfo{
			WorkerID: d.workerID,
			LastTime: now,
		}
		data, _ := json.Marshal(info)

		// Ignore errors, since Zookeeper may occasionally be unavailable
		d.zkClient.Set(nodeKey, data, -1)

		// Update local file cache as well
		d.saveLocalCache(info)
	}
}

// ensurePath creates a ZK path if needed.
func (d *SnowflakeDriver) ensurePath(path string) {
	exists, _, _ := d.zkClient.Exists(path)
	if !exists {
		d.zkClient.Create(path, []byte{}, 0, zk.WorldACL(zk.PermAll))
	}
}

// saveLocalCache saves the given NodeInfo to a file for local state recovery.
func (d *SnowflakeDriver) saveLocalCache(info NodeInfo) {
	data, _ := json.Marshal(info)
	fileName := fmt.Sprintf(".leaf_cache_%d", d.port)
	os.WriteFile(fileName, data, 0644)
}

// loadLocalCache loads NodeInfo from the local cache file, if present.
func (d *SnowflakeDriver) loadLocalCache() (NodeInfo, error) {
	fileName := fmt.Sprintf(".leaf_cache_%d", d.port)
	data, err := os.ReadFile(fileName)
	if err != nil {
		return NodeInfo{}, err
	}
	var info NodeInfo
	json.Unmarshal(data, &info)
	return info, nil
}

func main() {
	// NOTE: This code requires a local Zookeeper at localhost:2181 to run.
	// You can use Docker to start Zookeeper for local testing:
	// docker run --name some-zookeeper -p 2181:2181 -d zookeeper

	zkServers := []string{"127.0.0.1:2181"}

	// Start the ID service, simulating a worker on port 8080
	driver, err := NewSnowflakeDriver(zkServers, "order-service", 8080)
	if err != nil {
		log.Fatalf("Failed to init snowflake: %v", err)
	}

	log.Println("Start generating IDs...")

	var wg sync.WaitGroup
	// Launch 10 goroutines concurrently, each generating 100 IDs
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id, err := driver.NextID()
				if err != nil {
					log.Println(err)
					continue
				}
				ts, worker, seq := Decompose(id)
				fmt.Printf("%d (hex %s, ts=%d worker=%d seq=%d)\n",
					id, bitops.ToHex(uint64(id)), ts, worker, seq)
			}
		}()
	}
	wg.Wait()
	log.Println("Done.")
}
