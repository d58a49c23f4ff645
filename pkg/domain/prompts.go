package domain

// Built-in instruction texts and reference lists used to seed the settings row
// and as fallbacks when the stored prompts are empty. The texts are in Thai,
// matching the office's documents and the expected output language.

// DefaultExtractionPrompt instructs the model to pull event fields out of an
// official document and answer with JSON only.
const DefaultExtractionPrompt = `คุณคือ AI ผู้ช่วยสำนักงานที่ดินจังหวัดนครพนม หน้าที่คือดึงข้อมูลจาก "หนังสือราชการ" หรือ "กำหนดการ" ที่ได้รับ
ให้ดึงข้อมูลออกมาเป็น JSON Format เท่านั้น โดยมี fields ดังนี้:
- date: วันที่จัดงาน (รูปแบบภาษาไทย เช่น 25 ธันวาคม 2568)
- time: เวลาเริ่มงาน (รูปแบบ HH.MM น.)
- event_name: ชื่องานหรือกิจกรรม
- location: สถานที่จัดงาน
- president_name: ชื่อประธานในพิธี (ถ้ามี)
- president_position: ตำแหน่งประธาน (ถ้ามี)
- participants: รายชื่อผู้เข้าร่วม หรือกลุ่มเป้าหมาย (ถ้ามี)

ถ้าหาข้อมูลไหนไม่เจอ ให้ใส่เป็น null หรือ string ว่าง
ไม่ต้องตอบอะไรมานอกจาก JSON`

// DefaultGenerationPrompt instructs the model to write a formal PR article
// from structured event data.
const DefaultGenerationPrompt = `คุณคือนักประชาสัมพันธ์มืออาชีพ ของสำนักงานที่ดินจังหวัดนครพนม
จงเขียน "ข่าวประชาสัมพันธ์" จากข้อมูลที่ให้ต่อไปนี้
โดยใช้ภาษาที่ เป็นทางการ, สละสลวย, ทันสมัย และน่าอ่าน
(ใช้ Tone แบบ ข้าราชการยุคใหม่ แต่ยังคงความน่าเชื่อถือ)

โครงสร้างข่าว:
1. พาดหัวข่าว: สั้น กระชับ ดึงดูด (มี Emoji ได้นิดหน่อย)
2. เนื้อหา: ใคร ทำอะไร ที่ไหน เมื่อไหร่ อย่างไร (บรรยายบรรยากาศให้ดูดี)
3. การปฏิบัติหน้าที่: เน้นย้ำบทบาทของผู้บริหารและเจ้าหน้าที่
4. แฮชแท็ก: #สำนักงานที่ดินจังหวัดนครพนม #กรมที่ดิน #กระทรวงมหาดไทย #บำบัดทุกข์บำรุงสุข

ข้อมูล input จะเป็น JSON`

// DefaultOrganizationName is the office the service writes for
const DefaultOrganizationName = "สำนักงานที่ดินจังหวัดนครพนม"

// DefaultPresidentsList seeds the operator-editable roster of officials who
// may preside over events, one "name | position" pair per line.
const DefaultPresidentsList = `ว่าที่พันตรี อดิศักดิ์ น้อยสุวรรณ | ผู้ว่าราชการจังหวัดนครพนม
นายวีระ ฤกษ์วาณิชย์กุล | รองผู้ว่าราชการจังหวัดนครพนม
นายวรวิทย์ พิมพนิตย์ | รองผู้ว่าราชการจังหวัดนครพนม
ว่าที่ร้อยตรี รวยรุ่ง ใครบุตร | รองผู้ว่าราชการจังหวัดนครพนม
นายธเนศ ชาตะวราหะ | เจ้าพนักงานที่ดินจังหวัดนครพนม`

// DefaultParticipantsList seeds the roster of regular participants, one
// "full form | short form" pair per line.
const DefaultParticipantsList = `นายธเนศ ชาตะวราหะ เจ้าพนักงานที่ดินจังหวัดนครพนม | นายธเนศ ชาตะวราหะ (เจ้าพนักงานที่ดินฯ)
นายฉัตรชัย สาขี หัวหน้ากลุ่มงานวิชาการที่ดิน | นายฉัตรชัย สาขี (หน.วิชาการ)
พันจ่าตรีนครินทร์ พรหมมา หัวหน้าฝ่ายทะเบียน | พันจ่าตรีนครินทร์ พรหมมา (หน.ทะเบียน)
หัวหน้าฝ่ายรังวัด | หัวหน้าฝ่ายรังวัด
นางสาวพิสมัย นาโสก หัวหน้าฝ่ายอำนวยการ | นางสาวพิสมัย นาโสก (หน.อำนวยการ)
เจ้าหน้าที่สำนักงานที่ดินจังหวัดนครพนม | เจ้าหน้าที่สำนักงานที่ดินจังหวัดนครพนม (เหมา)`
