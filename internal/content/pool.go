package content

// Mission 1: RAM vs DISK classification cards.
var ClassificationPool = []ClassificationItem{
	// Level 1: everyday analogies
	{ID: "101", Difficulty: 1, Text: "게임 캐릭터의 현재 체력(HP)", Answer: StorageRAM, Explanation: "실시간으로 빠르게 변하는 전투 상태값은 RAM이 적합합니다."},
	{ID: "102", Difficulty: 1, Text: "내 컴퓨터의 '바탕화면' 저장 파일", Answer: StorageDisk, Explanation: "컴퓨터를 꺼도 사라지면 안 되므로 DISK에 저장합니다."},
	{ID: "103", Difficulty: 1, Text: "계산기 앱에 입력 중인 숫자", Answer: StorageRAM, Explanation: "연산 중인 임시 값은 RAM을 사용합니다."},
	{ID: "104", Difficulty: 1, Text: "스마트폰 갤러리의 가족 사진", Answer: StorageDisk, Explanation: "영구적으로 보관해야 하므로 DISK(Flash)에 저장합니다."},
	{ID: "105", Difficulty: 1, Text: "유튜브 동영상 '일시정지' 위치", Answer: StorageRAM, Explanation: "앱을 끄면 보통 사라지거나, 서버에서 다시 불러와야 하는 임시 데이터입니다."},
	{ID: "106", Difficulty: 1, Text: "한글(Word) 문서의 '저장하기' 버튼", Answer: StorageDisk, Explanation: "저장 버튼은 RAM의 내용을 DISK로 옮기는 작업입니다."},

	// Level 2: web & basic computing
	{ID: "201", Difficulty: 2, Text: "웹 브라우저의 '새로고침' 전 입력 폼 내용", Answer: StorageRAM, Explanation: "새로고침 시 날아가는 데이터는 RAM에 있었기 때문입니다."},
	{ID: "202", Difficulty: 2, Text: "회원가입 완료된 사용자 ID/PW", Answer: StorageDisk, Explanation: "사용자 계정 정보는 DB(DISK)에 영구 저장해야 합니다."},
	{ID: "203", Difficulty: 2, Text: "로그인 유지용 세션 ID (Session)", Answer: StorageRAM, Explanation: "서버 메모리(RAM)에 저장하여 빠르게 인증 상태를 확인합니다."},
	{ID: "204", Difficulty: 2, Text: "쇼핑몰의 '주문 완료' 내역", Answer: StorageDisk, Explanation: "결제 및 배송 근거 자료이므로 절대 지워지면 안 됩니다."},
	{ID: "205", Difficulty: 2, Text: "Ctrl+C 복사한 클립보드 데이터", Answer: StorageRAM, Explanation: "휘발성 메모리 영역인 클립보드를 사용합니다."},
	{ID: "206", Difficulty: 2, Text: "카카오톡 대화 내용 백업 파일", Answer: StorageDisk, Explanation: "백업 데이터는 파일 형태로 저장소에 보관됩니다."},

	// Level 3: technical architecture
	{ID: "301", Difficulty: 3, Text: "Redis 캐시 데이터", Answer: StorageRAM, Explanation: "Redis는 대표적인 In-Memory(RAM) 데이터 저장소입니다."},
	{ID: "302", Difficulty: 3, Text: "DBMS의 트랜잭션 로그 (WAL)", Answer: StorageDisk, Explanation: "장애 복구를 위해 로그는 반드시 디스크에 기록되어야 합니다."},
	{ID: "303", Difficulty: 3, Text: "운영체제 Swap 메모리", Answer: StorageDisk, Explanation: "RAM이 부족할 때 디스크의 일부를 빌려 쓰는 기술입니다. (예외적 케이스)"},
	{ID: "304", Difficulty: 3, Text: "Docker 컨테이너의 내부 상태", Answer: StorageRAM, Explanation: "컨테이너 재시작 시 초기화되는 데이터는 휘발성입니다."},
	{ID: "305", Difficulty: 3, Text: "데이터베이스 버퍼 풀 (Buffer Pool)", Answer: StorageRAM, Explanation: "자주 쓰는 데이터를 디스크에서 퍼올려 RAM에 둔 영역입니다."},
	{ID: "306", Difficulty: 3, Text: "S3 객체 스토리지 파일", Answer: StorageDisk, Explanation: "클라우드 환경의 대표적인 영구 파일 저장소입니다."},

	// Level 4: enterprise & deep tech
	{ID: "401", Difficulty: 4, Text: "Kafka 메시지 큐 (Retention 기간 내)", Answer: StorageDisk, Explanation: "Kafka는 메시지를 디스크에 순차적으로 기록하여 내구성을 보장합니다."},
	{ID: "402", Difficulty: 4, Text: "Spark RDD (Resilient Distributed Datasets)", Answer: StorageRAM, Explanation: "Spark는 메모리 기반 처리로 고속 분석을 수행합니다."},
	{ID: "403", Difficulty: 4, Text: "Memcached 저장 값", Answer: StorageRAM, Explanation: "단순 캐싱을 위한 휘발성 키-값 저장소입니다."},
	{ID: "404", Difficulty: 4, Text: "Git Commit History (.git 폴더)", Answer: StorageDisk, Explanation: "버전 관리 이력은 로컬 디스크 및 원격 저장소에 영구 보존됩니다."},
	{ID: "405", Difficulty: 4, Text: "리눅스 /tmp 디렉토리 (Reboot 시)", Answer: StorageRAM, Explanation: "보통 재부팅 시 삭제되도록 설정되거나 tmpfs(RAM)를 사용합니다."},
	{ID: "406", Difficulty: 4, Text: "블록체인 원장 데이터 (Ledger)", Answer: StorageDisk, Explanation: "모든 노드에 영구적으로 기록되고 분산 저장되어야 합니다."},
}

// Mission 1 follow-up: free-text persistence questions graded by the LLM.
var EssayPool = []EssayPrompt{
	{
		ID: "pe-1-1", Difficulty: 1,
		Question:    "컴퓨터 전원을 끄면 RAM에 있던 데이터는 사라집니다. 그 이유는 무엇인가요?",
		Concept:     "RAM is volatile memory requiring power to maintain state.",
		ModelAnswer: "RAM은 전원이 공급되어야만 데이터를 유지할 수 있는 휘발성 메모리이기 때문입니다.",
	},
	{
		ID: "pe-1-2", Difficulty: 1,
		Question:    "중요한 문서를 작성할 때 '저장(Save)' 버튼을 누르는 것은 컴퓨터 내부에서 어떤 동작을 의미하나요?",
		Concept:     "Moving data from volatile RAM to non-volatile Disk storage.",
		ModelAnswer: "휘발성 메모리인 RAM에 있는 작업 내용을 비휘발성 저장소인 하드디스크(DISK)로 복사하여 영구 보존하는 동작입니다.",
	},
	{
		ID: "pe-2-1", Difficulty: 2,
		Question:    "로그인 정보를 DB가 아닌 Redis 같은 메모리 저장소(RAM)에 저장하는 주된 이유는 무엇인가요?",
		Concept:     "Speed of access for frequent authentication checks.",
		ModelAnswer: "로그인 확인은 매우 빈번하게 일어나므로, 디스크보다 접근 속도가 훨씬 빠른 RAM을 사용하여 응답 속도를 높이기 위함입니다.",
	},
	{
		ID: "pe-2-2", Difficulty: 2,
		Question:    "쇼핑몰의 '장바구니' 기능은 로그인 전에도 유지되곤 합니다. 이를 서버 메모리(Session)에 저장할 때의 장단점은?",
		Concept:     "Fast access but consumes server RAM resources; risk of loss on server restart.",
		ModelAnswer: "장점은 빠른 읽기/쓰기가 가능하다는 것이고, 단점은 사용자가 많을수록 서버 메모리를 많이 차지하며 서버 재시작 시 정보가 날아갈 수 있다는 점입니다.",
	},
	{
		ID: "pe-3-1", Difficulty: 3,
		Question:    "데이터베이스는 디스크에 저장되지만, 성능을 위해 '버퍼 풀(Buffer Pool)'이라는 메모리 영역을 둡니다. 이 영역의 역할은?",
		Concept:     "Caching frequently accessed disk pages in RAM to reduce I/O.",
		ModelAnswer: "자주 사용하는 데이터 페이지를 디스크에서 읽어 메모리(Buffer Pool)에 캐싱해 둠으로써, 느린 디스크 I/O를 최소화하고 처리 속도를 높이는 역할입니다.",
	},
	{
		ID: "pe-3-2", Difficulty: 3,
		Question:    "Redis 같은 인메모리 DB도 데이터를 디스크에 저장하는 옵션(RDB, AOF)을 제공합니다. 메모리 DB인데 왜 디스크 저장이 필요할까요?",
		Concept:     "Persistence and recovery in case of power failure or crash.",
		ModelAnswer: "메모리는 휘발성이므로, 서버 장애나 전원 차단 시 데이터가 모두 유실되는 것을 방지하고 재시작 시 복구하기 위해 디스크에 백업이 필요합니다.",
	},
	{
		ID: "pe-4-1", Difficulty: 4,
		Question:    "데이터베이스의 트랜잭션 로그(WAL)는 성능을 위해 메모리 버퍼를 거치지만, 결국 디스크에 동기화(fsync)해야 합니다. 이 주기는 어떤 트레이드오프가 있나요?",
		Concept:     "Durability vs Performance (Latency).",
		ModelAnswer: "디스크 동기화를 자주 하면 데이터 유실 위험(Durability)은 줄어들지만 쓰기 성능(Performance)이 저하되고, 가끔 하면 성능은 좋지만 장애 시 데이터 유실 가능성이 커집니다.",
	},
	{
		ID: "pe-4-2", Difficulty: 4,
		Question:    "Kafka는 메시지를 디스크에 저장하지만 매우 빠릅니다. 디스크를 사용함에도 속도가 빠른 아키텍처적 이유는 무엇인가요?",
		Concept:     "Sequential I/O and Zero-copy principle.",
		ModelAnswer: "디스크의 랜덤 액세스 대신 순차 쓰기(Sequential I/O)를 사용하여 속도를 높이고, OS의 페이지 캐시와 Zero-copy 기술을 적극 활용하기 때문입니다.",
	},
}

// Mission 2: Excel-to-DB terminology pairs.
var TerminologyPool = []MatchingPair{
	// Level 1: basic structure
	{ID: "t1-1", Difficulty: 1, Left: "시트 (Sheet)", Right: "테이블 (Table)"},
	{ID: "t1-2", Difficulty: 1, Left: "행 (Row)", Right: "레코드 (Record)"},
	{ID: "t1-3", Difficulty: 1, Left: "열 (Column)", Right: "필드 (Field)"},
	{ID: "t1-4", Difficulty: 1, Left: "엑셀 파일 (.xlsx)", Right: "데이터베이스 (DB)"},

	// Level 2: operations
	{ID: "t2-1", Difficulty: 2, Left: "VLOOKUP 함수", Right: "조인 (JOIN)"},
	{ID: "t2-2", Difficulty: 2, Left: "필터 (Filter)", Right: "WHERE 조건절"},
	{ID: "t2-3", Difficulty: 2, Left: "중복 제거", Right: "DISTINCT"},
	{ID: "t2-4", Difficulty: 2, Left: "정렬 (Sort)", Right: "ORDER BY"},

	// Level 3: advanced features
	{ID: "t3-1", Difficulty: 3, Left: "피벗 테이블 (Pivot)", Right: "GROUP BY"},
	{ID: "t3-2", Difficulty: 3, Left: "데이터 유효성 검사", Right: "제약조건 (Constraint)"},
	{ID: "t3-3", Difficulty: 3, Left: "셀 참조 (=A1)", Right: "외래 키 (Foreign Key)"},
	{ID: "t3-4", Difficulty: 3, Left: "계산된 필드", Right: "View / Function"},

	// Level 4: system concepts
	{ID: "t4-1", Difficulty: 4, Left: "매크로 (Macro)", Right: "프로시저 (Stored Procedure)"},
	{ID: "t4-2", Difficulty: 4, Left: "변경 내용 추적", Right: "트랜잭션 로그 / Audit"},
	{ID: "t4-3", Difficulty: 4, Left: "시트 보호 (암호)", Right: "권한 관리 (GRANT/REVOKE)"},
	{ID: "t4-4", Difficulty: 4, Left: "찾기 및 바꾸기", Right: "UPDATE 문"},
}

// Mission 3: primary-key selection scenarios.
var TablePool = []TableScenario{
	{
		ID: "s1-1", Difficulty: 1, Title: "학교 학생 명부",
		Columns: []Column{
			{ID: "c1", Label: "이름", Sample: "홍길동"},
			{ID: "c2", Label: "학번", Sample: "20241234", PKEligible: true},
			{ID: "c3", Label: "학년", Sample: "1학년"},
			{ID: "c4", Label: "주소", Sample: "서울시 강남구"},
		},
		SearchTarget: "홍길동",
	},
	{
		ID: "s1-2", Difficulty: 1, Title: "도서관 도서 목록",
		Columns: []Column{
			{ID: "c1", Label: "책 제목", Sample: "해리포터"},
			{ID: "c2", Label: "저자", Sample: "J.K.롤링"},
			{ID: "c3", Label: "도서등록번호", Sample: "LIB-001-992", PKEligible: true},
			{ID: "c4", Label: "출판사", Sample: "문학수첩"},
		},
		SearchTarget: "해리포터",
	},
	{
		ID: "s2-1", Difficulty: 2, Title: "쇼핑몰 회원 관리",
		Columns: []Column{
			{ID: "c1", Label: "닉네임", Sample: "멋쟁이"},
			{ID: "c2", Label: "이메일", Sample: "user@example.com", PKEligible: true},
			{ID: "c3", Label: "휴대폰번호", Sample: "010-0000-0000"},
			{ID: "c4", Label: "가입일", Sample: "2024-01-01"},
		},
		SearchTarget: "멋쟁이",
	},
	{
		ID: "s2-2", Difficulty: 2, Title: "카페 메뉴판",
		Columns: []Column{
			{ID: "c1", Label: "메뉴명", Sample: "아메리카노"},
			{ID: "c2", Label: "메뉴코드", Sample: "BEV-001", PKEligible: true},
			{ID: "c3", Label: "가격", Sample: "4500"},
			{ID: "c4", Label: "카테고리", Sample: "Coffee"},
		},
		SearchTarget: "아메리카노",
	},
	{
		ID: "s3-1", Difficulty: 3, Title: "주민등록 시스템",
		Columns: []Column{
			{ID: "c1", Label: "이름", Sample: "김철수"},
			{ID: "c2", Label: "주민등록번호", Sample: "900101-1234567", PKEligible: true},
			{ID: "c3", Label: "지문정보", Sample: "[Binary Data]"},
			{ID: "c4", Label: "거주지", Sample: "부산시 해운대구"},
		},
		SearchTarget: "김철수",
	},
	{
		ID: "s3-2", Difficulty: 3, Title: "사내 임직원 관리",
		Columns: []Column{
			{ID: "c1", Label: "사원번호", Sample: "EMP202401", PKEligible: true},
			{ID: "c2", Label: "주민번호", Sample: "880101-1000000"},
			{ID: "c3", Label: "이메일", Sample: "lee@company.com"},
			{ID: "c4", Label: "직급", Sample: "과장"},
		},
		SearchTarget: "이영희",
	},
	{
		ID: "s4-1", Difficulty: 4, Title: "수강 신청 내역 (다대다 관계)",
		Columns: []Column{
			{ID: "c1", Label: "신청ID(Auto)", Sample: "REQ_9991", PKEligible: true},
			{ID: "c2", Label: "학번", Sample: "2024001"},
			{ID: "c3", Label: "과목코드", Sample: "CS101"},
			{ID: "c4", Label: "신청일시", Sample: "2024-02-20 10:00:01"},
		},
		SearchTarget: "2024001",
	},
	{
		ID: "s4-2", Difficulty: 4, Title: "글로벌 유저 관리 (분산 환경)",
		Columns: []Column{
			{ID: "c1", Label: "User UUID", Sample: "550e8400-e29b...", PKEligible: true},
			{ID: "c2", Label: "이메일", Sample: "global@test.com"},
			{ID: "c3", Label: "가입국가", Sample: "KR"},
			{ID: "c4", Label: "Sequence ID", Sample: "105"},
		},
		SearchTarget: "global@test.com",
	},
}

// Final mission: technology-choice scenarios.
var TechPool = []TechScenario{
	{
		ID: "101", Difficulty: 1,
		Prompt:      "혼자 사용하는 '할 일 목록(To-Do)' 스마트폰 앱을 만듭니다. 서버 없이 폰 안에 데이터를 저장하고 싶습니다.",
		Options:     []Option{{Label: "SQLite", Correct: true}, {Label: "Oracle Cloud"}},
		Explanation: "모바일 로컬 저장소로는 가볍고 설정이 필요 없는 SQLite가 표준입니다.",
	},
	{
		ID: "102", Difficulty: 1,
		Prompt:      "전교생 500명의 성적을 관리하는 웹 사이트를 만듭니다. 여러 선생님이 동시에 접속합니다.",
		Options:     []Option{{Label: "엑셀 파일 공유"}, {Label: "MySQL / MariaDB", Correct: true}},
		Explanation: "다중 사용자 동시 접속과 데이터 무결성을 위해서는 RDBMS 서버가 필요합니다.",
	},
	{
		ID: "201", Difficulty: 2,
		Prompt:      "고정된 양식의 '회원 정보'와 '주문 내역'을 관리하며, 정확한 매출 통계가 중요합니다.",
		Options:     []Option{{Label: "관계형 DB (RDBMS)", Correct: true}, {Label: "NoSQL (MongoDB)"}},
		Explanation: "데이터 구조가 명확하고 관계가 중요하며, 트랜잭션이 필요한 경우 RDBMS가 유리합니다.",
	},
	{
		ID: "202", Difficulty: 2,
		Prompt:      "게임에서 수시로 변하는 캐릭터의 위치 정보와 채팅 로그(형식이 제각각)를 대량으로 저장합니다.",
		Options:     []Option{{Label: "PostgreSQL"}, {Label: "MongoDB (NoSQL)", Correct: true}},
		Explanation: "데이터 구조가 유연하고 쓰기 속도가 중요한 비정형 데이터에는 NoSQL이 적합합니다.",
	},
	{
		ID: "301", Difficulty: 3,
		Prompt:      "초당 10만 건 이상의 '좋아요' 클릭과 '실시간 접속자 수'를 카운팅해야 합니다.",
		Options:     []Option{{Label: "Redis (In-Memory)", Correct: true}, {Label: "MySQL (Disk)"}},
		Explanation: "단순하지만 매우 빈번한 I/O가 발생하는 실시간 카운팅은 메모리 기반 DB인 Redis가 최적입니다.",
	},
	{
		ID: "302", Difficulty: 3,
		Prompt:      "과거 10년 치의 기상 데이터를 모아 복잡한 분석 쿼리를 돌려야 합니다. (수정은 거의 없음)",
		Options:     []Option{{Label: "OLTP (MySQL)"}, {Label: "OLAP (Data Warehouse)", Correct: true}},
		Explanation: "대용량 데이터를 분석/조회하는 용도에는 분석 전용 DB(Data Warehouse)가 적합합니다.",
	},
	{
		ID: "401", Difficulty: 4,
		Prompt:      "페이스북처럼 친구의 친구를 타고 들어가는 '인맥 관계'를 효율적으로 탐색하고 싶습니다.",
		Options:     []Option{{Label: "Graph DB (Neo4j)", Correct: true}, {Label: "Key-Value DB"}},
		Explanation: "데이터 간의 '관계'와 '연결'을 탐색하는 데 특화된 것은 그래프 데이터베이스입니다.",
	},
	{
		ID: "402", Difficulty: 4,
		Prompt:      "전 세계에 흩어진 서버에서 동시에 데이터를 쓰고 읽어야 하며, 일부 서버가 죽어도 멈추면 안 됩니다 (가용성 > 일관성).",
		Options:     []Option{{Label: "Cassandra", Correct: true}, {Label: "Single MySQL"}},
		Explanation: "분산 환경에서 높은 가용성과 확장성을 보장하는 데는 Cassandra 같은 Columnar NoSQL이 유리합니다.",
	},
}
